package dashboard

import (
	"net/http"
	"time"

	"github.com/oursky/isoduration/pkg/api"

	"github.com/samber/lo"
)

type row struct {
	api.Conversion
	Std  time.Duration
	Fits bool
}

type dataIndex struct {
	Title  string
	Query  string
	Result *row
	Recent []row
}

func newRow(conv api.Conversion) row {
	r := row{Conversion: conv}
	if conv.Duration != nil {
		std, err := conv.Duration.Std()
		r.Std, r.Fits = std, err == nil
	}
	return r
}

func (s *Server) index(rw http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(rw, r)
		return
	}

	data := &dataIndex{Title: s.title, Query: r.URL.Query().Get("value")}
	if data.Query != "" {
		result := newRow(api.Parse(data.Query))
		data.Result = &result
	}
	if s.history != nil {
		data.Recent = lo.Map(s.history.Recent().Value(), func(conv api.Conversion, _ int) row {
			return newRow(conv)
		})
	}

	s.template(rw, "index.html", data)
}

func (s *Server) styles(rw http.ResponseWriter, r *http.Request) {
	s.asset(rw, "styles.css", "text/css; charset=utf-8")
}
