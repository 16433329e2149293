package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/oursky/isoduration/pkg/isoduration"
	"github.com/oursky/isoduration/pkg/utils/httputil"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

const recentSize = 20

type Conversion struct {
	Value    string                `json:"value" yaml:"value"`
	Duration *isoduration.Duration `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Seconds  int64                 `json:"seconds" yaml:"seconds"`
	Nanos    int32                 `json:"nanos" yaml:"nanos"`
	Error    string                `json:"error,omitempty" yaml:"error,omitempty"`
	Kind     isoduration.Kind      `json:"kind,omitempty" yaml:"kind,omitempty"`
}

type ConvertRequest struct {
	Values []string `json:"values" validate:"required,min=1,dive,max=256"`
}

type ConvertResponse struct {
	Results []Conversion `json:"results"`
}

func (s *Server) parse(value string) Conversion {
	conv := Parse(value)
	if conv.Error != "" {
		s.logger.Debug("rejected duration", zap.String("value", value), zap.String("error", conv.Error))
	}
	s.metrics.record(opParse, conv.Kind)
	s.remember(conv)
	return conv
}

// Parse converts value the way the API does, reporting failures in the
// Error and Kind fields.
func Parse(value string) Conversion {
	d, err := isoduration.Parse(value)
	if err != nil {
		return Conversion{Value: value, Error: err.Error(), Kind: isoduration.KindOf(err)}
	}
	return Conversion{
		Value:    value,
		Duration: &d,
		Seconds:  d.Seconds(),
		Nanos:    d.Nanos(),
	}
}

func (s *Server) remember(conv Conversion) {
	s.recent.Update(func(list []Conversion) []Conversion {
		next := make([]Conversion, 0, recentSize)
		next = append(next, conv)
		return append(next, lo.Slice(list, 0, recentSize-1)...)
	})
}

func (s *Server) apiParse(rw http.ResponseWriter, r *http.Request) {
	conv := s.parse(r.URL.Query().Get("value"))
	if conv.Error != "" {
		httputil.RespondJSONStatus(rw, http.StatusBadRequest, conv)
		return
	}
	httputil.RespondJSON(rw, conv)
}

func (s *Server) apiFormat(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	seconds, err := strconv.ParseInt(query.Get("seconds"), 10, 64)
	if err != nil {
		http.Error(rw, fmt.Sprintf("invalid seconds: %s", err), http.StatusBadRequest)
		return
	}
	var nanos int64
	if n := query.Get("nanos"); n != "" {
		nanos, err = strconv.ParseInt(n, 10, 64)
		if err != nil {
			http.Error(rw, fmt.Sprintf("invalid nanos: %s", err), http.StatusBadRequest)
			return
		}
	}

	d := isoduration.New(seconds, nanos)
	conv := Conversion{
		Value:    isoduration.Format(d),
		Duration: &d,
		Seconds:  d.Seconds(),
		Nanos:    d.Nanos(),
	}
	s.metrics.record(opFormat, "")
	s.remember(conv)
	httputil.RespondJSON(rw, conv)
}

func (s *Server) apiConvert(rw http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(rw, fmt.Sprintf("invalid request: %s", err), http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		http.Error(rw, fmt.Sprintf("invalid request: %s", err), http.StatusBadRequest)
		return
	}
	if len(req.Values) > s.maxBatch {
		http.Error(rw, fmt.Sprintf("too many values: %d > %d", len(req.Values), s.maxBatch), http.StatusBadRequest)
		return
	}

	results := lo.Map(req.Values, func(value string, _ int) Conversion {
		return s.parse(value)
	})
	httputil.RespondJSON(rw, ConvertResponse{Results: results})
}
