package fetcher

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"

	"github.com/hda-infdl/partner-scout/internal/model"
)

// DecodeArray decodes a JSON array of raw company records streaming,
// element by element. Expects input in the form [{...},{...}].
func DecodeArray(ctx context.Context, r io.Reader) ([]model.RawCompany, error) {
	decoder := json.NewDecoder(r)

	// Expect opening bracket
	tok, err := decoder.Token()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, eris.Wrap(err, "json: read opening token")
	}

	delim, ok := tok.(json.Delim)
	if !ok || delim != '[' {
		return nil, eris.Errorf("json: expected '[', got %v", tok)
	}

	var records []model.RawCompany
	for decoder.More() {
		if ctx.Err() != nil {
			return nil, eris.Wrap(ctx.Err(), "json: context cancelled")
		}

		var rec model.RawCompany
		if err := decoder.Decode(&rec); err != nil {
			return nil, eris.Wrap(err, "json: decode element")
		}
		records = append(records, rec)
	}

	// Consume closing bracket
	if _, err := decoder.Token(); err != nil && err != io.EOF {
		return nil, eris.Wrap(err, "json: read closing token")
	}

	return records, nil
}
