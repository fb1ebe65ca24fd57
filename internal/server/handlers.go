package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gfret/fretboard/pkg/buildinfo"
	"github.com/gfret/fretboard/pkg/config"
	ferrors "github.com/gfret/fretboard/pkg/errors"
	"github.com/gfret/fretboard/pkg/layout"
	"github.com/gfret/fretboard/pkg/pipeline"
)

// renderRequest is the body of POST /v1/render.
type renderRequest struct {
	pipeline.Options
	Format string `json:"format,omitempty"`
}

// factorsResponse carries the variant kind as a stable tag. The multiscale
// parameters are only present for multiscale instruments.
type factorsResponse struct {
	Variant      string   `json:"variant"`
	ScaleTreble  *float64 `json:"scale_treble,omitempty"`
	PFret        *float64 `json:"pfret,omitempty"`
	Handedness   string   `json:"handedness,omitempty"`
	XRatio       float64  `json:"x_ratio"`
	YRatio       float64 `json:"y_ratio"`
	TrebleOffset float64 `json:"treble_offset"`
	Width        float64  `json:"width"`
	Height       float64  `json:"height"`
	Units        string   `json:"units"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleFactors(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Config = s.requestConfig()

	inst, err := pipeline.Resolve(&opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	engine, err := layout.NewEngine(inst.Specs, inst.Border)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	f := engine.Factors()
	resp := factorsResponse{
		Variant:      "monoscale",
		XRatio:       f.XRatio,
		YRatio:       f.YRatio,
		TrebleOffset: f.TrebleOffset,
		Width:        engine.Width(),
		Height:       engine.Height(),
		Units:        inst.Units.String(),
	}
	v := inst.Specs.Variant
	if v.IsMultiscale() {
		resp.Variant = "multiscale"
		treble, _ := v.ScaleTreble()
		pfret, _ := v.PFret()
		h, _ := v.Handedness()
		resp.ScaleTreble = &treble
		resp.PFret = &pfret
		resp.Handedness = h.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRenderQuery(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, opts, chi.URLParam(r, "format"))
}

func (s *Server) handleRenderBody(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	format := req.Format
	if format == "" {
		format = pipeline.FormatSVG
	}
	s.render(w, r, req.Options, format)
}

// render runs the pipeline for a single format and writes the artifact.
func (s *Server) render(w http.ResponseWriter, r *http.Request, opts pipeline.Options, format string) {
	format = strings.ToLower(format)
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}
	opts.Source = ""
	opts.Config = s.requestConfig()

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cacheStatus := "miss"
	if result.CacheInfo.RenderHit {
		cacheStatus = "hit"
	}
	data := result.Artifacts[format]
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Cache", cacheStatus)
	w.Header().Set("ETag", strconv.Quote(result.BoardHash))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// requestConfig returns a copy of the server configuration so that a units
// override in one request cannot leak into another.
func (s *Server) requestConfig() *config.Config {
	cfg := s.config
	return &cfg
}

// optionsFromQuery maps query parameters onto pipeline options.
func optionsFromQuery(q url.Values) (pipeline.Options, error) {
	var opts pipeline.Options
	var err error

	measurements := []struct {
		name string
		dst  **float64
	}{
		{"scale", &opts.Scale},
		{"nut", &opts.Nut},
		{"bridge", &opts.Bridge},
	}
	for _, m := range measurements {
		if !q.Has(m.name) {
			continue
		}
		v, err := queryFloat(q, m.name)
		if err != nil {
			return opts, err
		}
		*m.dst = &v
	}
	if opts.ScaleTreble, err = queryFloat(q, "multi"); err != nil {
		return opts, err
	}
	if opts.PNGScale, err = queryFloat(q, "png_scale"); err != nil {
		return opts, err
	}

	if v := q.Get("count"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return opts, ferrors.Wrap(ferrors.ErrCodeInvalidCount, err, "invalid count %q", v)
		}
		count := uint32(n)
		opts.Count = &count
	}
	if q.Has("pfret") {
		pfret, err := queryFloat(q, "pfret")
		if err != nil {
			return opts, err
		}
		opts.PFret = &pfret
	}
	if q.Has("border") {
		border, err := queryFloat(q, "border")
		if err != nil {
			return opts, err
		}
		opts.Border = &border
	}
	if v := q.Get("left"); v != "" {
		left, err := strconv.ParseBool(v)
		if err != nil {
			return opts, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "invalid left %q", v)
		}
		if left {
			opts.Handedness = layout.Left.String()
		}
	}
	opts.Units = q.Get("units")
	return opts, nil
}

func queryFloat(q url.Values, name string) (float64, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, ferrors.Wrap(ferrors.ErrCodeInvalidMeasurement, err, "invalid %s %q", name, v)
	}
	return f, nil
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch {
	case ferrors.IsValidation(err):
		return http.StatusBadRequest
	case ferrors.Is(err, ferrors.ErrCodeFileNotFound):
		return http.StatusNotFound
	case ferrors.Is(err, ferrors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := ferrors.GetCode(err)
	if code == "" {
		code = ferrors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", RequestID(r.Context()), "err", err)
	}
	writeJSON(w, status, errorResponse{Code: string(code), Message: ferrors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
