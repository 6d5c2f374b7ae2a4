package renderer

import (
	"encoding/json"
	"io"

	"github.com/lechnerc77/github-pr-analytics/internal/domain"
)

// writeJSON serializes the full results collection as a pretty-printed array.
func writeJSON(w io.Writer, reports []*domain.RepositoryReport) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
