package pagination

import (
	"strconv"
	"strings"

	domainerrors "minerva/contexts/knowledge-base/qna-service/domain/errors"
)

// Page is a resolved listing window. A nil Limit means unbounded: return
// everything from Offset onward.
type Page struct {
	Limit  *int
	Offset int
}

// Resolve turns raw query parameters into a concrete window. A missing offset
// defaults to 0 and a missing limit to unbounded. Negative or non-numeric
// input is an error, never silently clamped.
func Resolve(rawLimit string, rawOffset string) (Page, error) {
	var page Page

	if raw := strings.TrimSpace(rawLimit); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return Page{}, domainerrors.ErrInvalidPagination
		}
		page.Limit = &limit
	}

	if raw := strings.TrimSpace(rawOffset); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return Page{}, domainerrors.ErrInvalidPagination
		}
		page.Offset = offset
	}

	return page, nil
}
