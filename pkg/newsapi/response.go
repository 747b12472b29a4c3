package newsapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Adda-Baaj/quicknews/internal/domain"
)

const statusOK = "ok"

// Response is a successful API envelope.
type Response struct {
	status       string
	totalResults int
	articles     []domain.Article
	endpoint     Endpoint
	country      Country
}

// Status returns the API status string ("ok" for every Response handed to callers).
func (r *Response) Status() string { return r.status }

// TotalResults returns the API's reported total, which may exceed len(Articles()).
func (r *Response) TotalResults() int { return r.totalResults }

// Endpoint returns the endpoint the request was issued against.
func (r *Response) Endpoint() Endpoint { return r.endpoint }

// Country returns the country the request was issued for.
func (r *Response) Country() Country { return r.country }

// Articles returns a copy of the articles in API order.
func (r *Response) Articles() []domain.Article {
	if r == nil || len(r.articles) == 0 {
		return []domain.Article{}
	}
	out := make([]domain.Article, len(r.articles))
	copy(out, r.articles)
	return out
}

// envelope mirrors the wire shape; pointers tell absent/null apart from empty.
type envelope struct {
	Status       *string         `json:"status"`
	TotalResults json.RawMessage `json:"totalResults"`
	Articles     *[]article      `json:"articles"`
	Code         *string         `json:"code"`
}

type article struct {
	Title *string `json:"title"`
	URL   *string `json:"url"`
}

// decodeEnvelope parses body and checks the fields required for its status.
func decodeEnvelope(body []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, newError(KindParse, fmt.Errorf("decode envelope: %w", err))
	}
	if env.Status == nil {
		return nil, newError(KindParse, errors.New("envelope missing status"))
	}
	if *env.Status != statusOK {
		return &env, nil
	}
	if env.Articles == nil {
		return nil, newError(KindParse, errors.New("envelope missing articles"))
	}
	for i, a := range *env.Articles {
		if a.Title == nil {
			return nil, newError(KindParse, fmt.Errorf("article[%d] missing title", i))
		}
		if a.URL == nil {
			return nil, newError(KindParse, fmt.Errorf("article[%d] missing url", i))
		}
	}
	return &env, nil
}

// interpret turns a decoded envelope into the success value or a mapped error.
func interpret(env *envelope) (*Response, error) {
	if *env.Status != statusOK {
		return nil, mapCode(env.Code)
	}

	src := *env.Articles
	articles := make([]domain.Article, 0, len(src))
	for _, a := range src {
		articles = append(articles, domain.Article{Title: *a.Title, URL: *a.URL})
	}
	return &Response{
		status:       *env.Status,
		totalResults: lenientCount(env.TotalResults),
		articles:     articles,
	}, nil
}

// lenientCount reads an informational integer that may arrive as a number or a
// numeric string. Anything else yields 0.
func lenientCount(raw json.RawMessage) int {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseResponse decodes and interprets a response body in one step.
func parseResponse(body []byte) (*Response, error) {
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	return interpret(env)
}
