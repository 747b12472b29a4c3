package publishers

import (
	"strconv"
	"time"

	"github.com/Adda-Baaj/quicknews/internal/domain"
)

// Batch is one fetch's worth of headlines in API order, together with the
// request that produced them.
type Batch struct {
	Endpoint    string
	Country     string
	Articles    []domain.Article
	CollectedAt time.Time
}

// Event is the payload forwarded downstream for each headline.
type Event struct {
	Endpoint    string         `json:"endpoint"`
	Country     string         `json:"country"`
	Position    int            `json:"position"`
	Total       int            `json:"total"`
	Article     domain.Article `json:"article"`
	CollectedAt time.Time      `json:"collected_at"`
}

// Events expands the batch into one Event per article. Position is the
// zero-based rank within the batch.
func (b Batch) Events() []Event {
	at := b.CollectedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}

	events := make([]Event, 0, len(b.Articles))
	for i, a := range b.Articles {
		events = append(events, Event{
			Endpoint:    b.Endpoint,
			Country:     b.Country,
			Position:    i,
			Total:       len(b.Articles),
			Article:     a,
			CollectedAt: at,
		})
	}
	return events
}

// attribute is one piece of message metadata. kind is the SQS/SNS data type.
type attribute struct {
	name  string
	value string
	kind  string
}

// attributes lets queue consumers filter on request and rank without decoding
// the body. Empty request fields are left out.
func (e Event) attributes() []attribute {
	attrs := []attribute{{name: "position", value: strconv.Itoa(e.Position), kind: "Number"}}
	if e.Endpoint != "" {
		attrs = append(attrs, attribute{name: "endpoint", value: e.Endpoint, kind: "String"})
	}
	if e.Country != "" {
		attrs = append(attrs, attribute{name: "country", value: e.Country, kind: "String"})
	}
	return attrs
}
