package util

import (
	"fmt"
	"net/http"

	"github.com/agricom-careers/careers-api/pkg/careers_api/models"
)

// SetPaginationHeaders exposes list paging as response headers so the body can
// stay a plain array.
func SetPaginationHeaders(r *http.Request, header func(key, value string), p models.Pagination) {
	header("X-Total-Count", fmt.Sprintf("%d", p.TotalRecords))
	header("X-Total-Pages", fmt.Sprintf("%d", p.TotalPages))
	header("X-Current-Page", fmt.Sprintf("%d", p.CurrentPage))
	header("X-Per-Page", fmt.Sprintf("%d", p.RecordsPerPage))

	link := ""
	if p.Next != nil {
		link += fmt.Sprintf(`<%s?page=%d&perPage=%d>; rel="next"`, r.URL.Path, *p.Next, p.RecordsPerPage)
	}
	if p.Previous != nil {
		if link != "" {
			link += ", "
		}
		link += fmt.Sprintf(`<%s?page=%d&perPage=%d>; rel="prev"`, r.URL.Path, *p.Previous, p.RecordsPerPage)
	}
	if link != "" {
		header("Link", link)
	}
}
