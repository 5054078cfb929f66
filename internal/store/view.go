package store

import "inventory_dashboard/internal/models"

// ViewState is the data slice: the last fetched page plus the parameters
// that produced (or will produce) it.
type ViewState struct {
	Items      []models.Product `json:"items"`
	Total      int              `json:"total"`
	Loading    bool             `json:"loading"`
	Error      *string          `json:"error"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	SortField  string           `json:"sort_field,omitempty"`
	SortOrder  models.SortOrder `json:"sort_order"`
	FilterText string           `json:"filter_text"`

	// RequestSeq is the sequence number of the latest issued fetch. Results
	// carrying any other number are stale and ignored.
	RequestSeq uint64 `json:"request_seq"`
}

// InitialViewState returns the state of a freshly opened dashboard.
func InitialViewState() ViewState {
	p := models.DefaultViewParams()
	return ViewState{
		Items:     []models.Product{},
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortOrder: p.SortOrder,
	}
}

// Params extracts the fetch parameters from the view state.
func (v ViewState) Params() models.ViewParams {
	return models.ViewParams{
		Page:       v.Page,
		PageSize:   v.PageSize,
		SortField:  v.SortField,
		SortOrder:  v.SortOrder,
		FilterText: v.FilterText,
	}
}

// ReduceView applies a view intent. Intents it does not know leave v as is.
func ReduceView(v ViewState, in Intent) ViewState {
	switch in := in.(type) {
	case SetPage:
		v.Page = in.Page
	case SetPageSize:
		v.PageSize = in.Size
		v.Page = 1
	case SetSort:
		if v.SortField == in.Field {
			v.SortOrder = flip(v.SortOrder)
		} else {
			v.SortField = in.Field
			v.SortOrder = models.SortAsc
		}
		v.Page = 1
	case SetFilter:
		v.FilterText = in.Text
		v.Page = 1
	case FetchPending:
		v.Loading = true
		v.Error = nil
		v.RequestSeq = in.Seq
	case FetchFulfilled:
		if in.Seq != v.RequestSeq {
			return v
		}
		v.Loading = false
		v.Items = in.Items
		v.Total = in.Total
	case FetchRejected:
		if in.Seq != v.RequestSeq {
			return v
		}
		msg := in.Message
		v.Loading = false
		v.Error = &msg
	case ParamsRestored:
		v.Page = in.Params.Page
		v.PageSize = in.Params.PageSize
		v.SortField = in.Params.SortField
		v.SortOrder = in.Params.SortOrder
		v.FilterText = in.Params.FilterText
	}
	return v
}

func flip(o models.SortOrder) models.SortOrder {
	if o == models.SortAsc {
		return models.SortDesc
	}
	return models.SortAsc
}
