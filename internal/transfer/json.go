package transfer

import (
	"encoding/json"
	"fmt"

	"github.com/msavelyeva/nutrikeep/models"
)

func encodeJSON(bundle models.ExportBundle) ([]byte, error) {
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export bundle: %w", err)
	}
	return append(data, '\n'), nil
}

func decodeJSON(data []byte) (models.ExportBundle, error) {
	var bundle models.ExportBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return models.ExportBundle{}, fmt.Errorf("%w: %s", ErrMalformedPayload, err)
	}

	for _, log := range bundle.DailyLogs {
		log.Normalize()
	}
	return bundle, nil
}
