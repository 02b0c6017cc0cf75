package app

import (
	"context"
	"log"

	"sheetex/domain/fieldmap"
	"sheetex/domain/tabular"
	"sheetex/ports"
)

// ExtractService runs the extraction pipeline: parse the field mapping,
// decode the file into a frame, normalize the column names, project the
// mapped columns into records. Stateless; safe for concurrent use as long
// as each call owns its inputs.
type ExtractService struct {
	decoder ports.FrameDecoder
}

// NewExtractService creates the pipeline service around a frame decoder.
func NewExtractService(decoder ports.FrameDecoder) *ExtractService {
	return &ExtractService{decoder: decoder}
}

// Extract returns one record per data row of the file, keyed by the aliases
// in tableFields. Any failure aborts the whole call; there is no partial
// result.
func (s *ExtractService) Extract(ctx context.Context, file tabular.RawFile, tableFields string) ([]tabular.Record, error) {
	mapping, err := fieldmap.Parse(tableFields)
	if err != nil {
		return nil, err
	}

	frame, err := s.decoder.Decode(file.Content, file.Extension)
	if err != nil {
		return nil, err
	}

	records, err := tabular.Project(frame.NormalizeColumns(), mapping)
	if err != nil {
		return nil, err
	}

	log.Printf("[extract] projected %d records across %d fields", len(records), mapping.Len())
	return records, nil
}
