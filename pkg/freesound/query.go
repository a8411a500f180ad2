package freesound

import (
	"fmt"
	"strconv"
	"strings"
)

// SortOption selects the ordering of text search results.
type SortOption int

const (
	SortScore SortOption = iota
	SortDurationDesc
	SortDurationAsc
	SortCreatedDesc
	SortCreatedAsc
	SortDownloadsDesc
	SortDownloadsAsc
	SortRatingDesc
	SortRatingAsc
)

var sortTokens = [...]string{
	SortScore:         "score",
	SortDurationDesc:  "duration_desc",
	SortDurationAsc:   "duration_asc",
	SortCreatedDesc:   "created_desc",
	SortCreatedAsc:    "created_asc",
	SortDownloadsDesc: "downloads_desc",
	SortDownloadsAsc:  "downloads_asc",
	SortRatingDesc:    "rating_desc",
	SortRatingAsc:     "rating_asc",
}

// String returns the wire token for the sort option.
func (s SortOption) String() string {
	if s < 0 || int(s) >= len(sortTokens) {
		return fmt.Sprintf("SortOption(%d)", int(s))
	}
	return sortTokens[s]
}

// SortOptions lists every sort option in declaration order.
func SortOptions() []SortOption {
	out := make([]SortOption, len(sortTokens))
	for i := range sortTokens {
		out[i] = SortOption(i)
	}
	return out
}

// ParseSortOption maps a wire token (case-insensitive, surrounding spaces
// ignored) back to its SortOption.
func ParseSortOption(token string) (SortOption, error) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	for i, candidate := range sortTokens {
		if candidate == normalized {
			return SortOption(i), nil
		}
	}
	return SortScore, fmt.Errorf("unknown sort option %q", token)
}

// Param is a single rendered query-string pair.
type Param struct {
	Key   string
	Value string
}

// SearchQuery accumulates optional text-search parameters. The zero value is
// an empty query; setters return the receiver so calls can be chained.
// A SearchQuery is not safe for concurrent mutation.
type SearchQuery struct {
	query       *string
	filter      *string
	sort        *SortOption
	groupByPack *bool
	page        *int
	pageSize    *int
	fields      []string
	descriptors []string
	normalized  *bool

	hasFields      bool
	hasDescriptors bool
}

// NewSearchQuery returns an empty SearchQuery.
func NewSearchQuery() *SearchQuery {
	return &SearchQuery{}
}

// Query sets the free-text search term.
func (q *SearchQuery) Query(text string) *SearchQuery {
	q.query = &text
	return q
}

// Filter sets the filter expression. It is passed through unparsed.
func (q *SearchQuery) Filter(expr string) *SearchQuery {
	q.filter = &expr
	return q
}

// Sort sets the result ordering.
func (q *SearchQuery) Sort(sort SortOption) *SearchQuery {
	q.sort = &sort
	return q
}

// GroupByPack sets whether results from the same pack are collapsed.
func (q *SearchQuery) GroupByPack(group bool) *SearchQuery {
	q.groupByPack = &group
	return q
}

// Page sets the requested page number. Values are not range checked.
func (q *SearchQuery) Page(page int) *SearchQuery {
	q.page = &page
	return q
}

// PageSize sets the number of results per page. Values are not range checked.
func (q *SearchQuery) PageSize(size int) *SearchQuery {
	q.pageSize = &size
	return q
}

// Fields sets the sound fields the server should return.
func (q *SearchQuery) Fields(fields ...string) *SearchQuery {
	q.fields = append([]string(nil), fields...)
	q.hasFields = true
	return q
}

// Descriptors sets the analysis descriptors the server should return.
func (q *SearchQuery) Descriptors(descriptors ...string) *SearchQuery {
	q.descriptors = append([]string(nil), descriptors...)
	q.hasDescriptors = true
	return q
}

// Normalized sets whether descriptor values are normalized.
func (q *SearchQuery) Normalized(normalized bool) *SearchQuery {
	q.normalized = &normalized
	return q
}

// Clone returns an independent copy of q.
func (q *SearchQuery) Clone() *SearchQuery {
	if q == nil {
		return NewSearchQuery()
	}
	dup := *q
	dup.fields = append([]string(nil), q.fields...)
	dup.descriptors = append([]string(nil), q.descriptors...)
	return &dup
}

// SortValue reports the configured sort option, if any.
func (q *SearchQuery) SortValue() (SortOption, bool) {
	if q == nil || q.sort == nil {
		return SortScore, false
	}
	return *q.sort, true
}

// GroupByPackValue reports the configured pack grouping, if any.
func (q *SearchQuery) GroupByPackValue() (bool, bool) {
	if q == nil || q.groupByPack == nil {
		return false, false
	}
	return *q.groupByPack, true
}

// Params renders the accumulated parameters in wire order: query, filter,
// sort, group_by_pack, page, page_size, fields, descriptors, normalized.
// Unset parameters are omitted. Params has no side effects.
func (q *SearchQuery) Params() []Param {
	if q == nil {
		return nil
	}
	params := make([]Param, 0, 9)
	if q.query != nil {
		params = append(params, Param{Key: "query", Value: *q.query})
	}
	if q.filter != nil {
		params = append(params, Param{Key: "filter", Value: *q.filter})
	}
	if q.sort != nil {
		params = append(params, Param{Key: "sort", Value: q.sort.String()})
	}
	if q.groupByPack != nil {
		params = append(params, Param{Key: "group_by_pack", Value: flag(*q.groupByPack)})
	}
	if q.page != nil {
		params = append(params, Param{Key: "page", Value: strconv.Itoa(*q.page)})
	}
	if q.pageSize != nil {
		params = append(params, Param{Key: "page_size", Value: strconv.Itoa(*q.pageSize)})
	}
	if q.hasFields {
		params = append(params, Param{Key: "fields", Value: strings.Join(q.fields, ",")})
	}
	if q.hasDescriptors {
		params = append(params, Param{Key: "descriptors", Value: strings.Join(q.descriptors, ",")})
	}
	if q.normalized != nil {
		params = append(params, Param{Key: "normalized", Value: flag(*q.normalized)})
	}
	return params
}

// SoundQuery configures single-sound requests.
type SoundQuery struct {
	// Descriptors is rendered when non-nil, even if empty.
	Descriptors []string
	Normalized  *bool
}

// Params renders the sound query in wire order: descriptors, normalized.
func (q SoundQuery) Params() []Param {
	var params []Param
	if q.Descriptors != nil {
		params = append(params, Param{Key: "descriptors", Value: strings.Join(q.Descriptors, ",")})
	}
	if q.Normalized != nil {
		params = append(params, Param{Key: "normalized", Value: flag(*q.Normalized)})
	}
	return params
}

// Bool returns a pointer to v, for optional boolean fields.
func Bool(v bool) *bool {
	return &v
}

// The service expects 1/0 rather than true/false.
func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
