package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/woordkaart/grieks"
	"github.com/woordkaart/grieks/internal/view"
)

var (
	ErrMissingText  = errors.New("missing 'text'")
	ErrInvalidTense = errors.New("invalid 'tense'")
)

// maxBodyBytes bounds POST bodies; verb texts are a few lines long.
const maxBodyBytes = 64 << 10

// ---- JSON request/response types ----------------------------------------

type conjugateRequest struct {
	Text  string `json:"text"`
	Tense string `json:"tense"`
}

type speechRequest struct {
	Text     string `json:"text"`
	WordType string `json:"word_type"`
}

type speechResponse struct {
	Speech string `json:"speech"`
}

type normalizeResponse struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeBody reads a JSON body of at most maxBodyBytes into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
}

// cached returns the cached response for key, or computes, stores and
// returns it.
func (s *Server) cached(endpoint, key string, compute func() any) any {
	if s.cache == nil {
		return compute()
	}
	key = endpoint + "\x00" + key
	if v, ok := s.cache.Get(key); ok {
		s.metrics.CacheHitsTotal.WithLabelValues(endpoint).Inc()
		return v
	}
	v := compute()
	s.cache.SetDefault(key, v)
	return v
}

// conjugate builds the document for text, restricted to one tense when
// tense is non-empty.
func (s *Server) conjugate(text, tense string) (view.Verb, error) {
	if strings.TrimSpace(text) == "" {
		return view.Verb{}, ErrMissingText
	}
	var (
		t      grieks.Tense
		single = tense != ""
	)
	if single {
		var ok bool
		if t, ok = grieks.ParseTense(tense); !ok {
			return view.Verb{}, ErrInvalidTense
		}
	}

	doc := s.cached("conjugate", tense+"\x00"+text, func() any {
		v := grieks.ParseVerb(text)
		if single {
			return view.FromVerb(v, []grieks.Conjugation{v.Conjugate(t)}, nil)
		}
		return view.FromVerb(v, v.Tables(), nil)
	}).(view.Verb)
	for _, c := range doc.Conjugations {
		s.metrics.ObserveGeneration(c.Tense, c.Diagnostic == "")
	}
	return doc, nil
}

// ---- handlers -----------------------------------------------------------

func (s *Server) handleConjugate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req conjugateRequest
		switch r.Method {
		case http.MethodGet:
			req.Text = r.URL.Query().Get("text")
			req.Tense = r.URL.Query().Get("tense")
		case http.MethodPost:
			if err := decodeBody(w, r, &req); err != nil {
				writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
				return
			}
		default:
			writeError(w, http.StatusMethodNotAllowed, "GET or POST required")
			return
		}

		doc, err := s.conjugate(req.Text, req.Tense)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

func (s *Server) handleImperative() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text := r.URL.Query().Get("text")
		if strings.TrimSpace(text) == "" {
			writeError(w, http.StatusBadRequest, ErrMissingText.Error())
			return
		}
		doc := s.cached("imperative", text, func() any {
			return view.FromImperative(grieks.ParseVerb(text).Imperative())
		}).(view.Imperative)
		s.metrics.ObserveGeneration("prostaktiki", doc.Diagnostic == "")
		writeJSON(w, http.StatusOK, doc)
	}
}

func (s *Server) handleSpeech() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req speechRequest
		if err := decodeBody(w, r, &req); err != nil || strings.TrimSpace(req.Text) == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		writeJSON(w, http.StatusOK, speechResponse{
			Speech: grieks.SpeechText(req.Text, grieks.WordType(req.WordType)),
		})
	}
}

func (s *Server) handleNormalize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		in := r.URL.Query().Get("s")
		if in == "" {
			writeError(w, http.StatusBadRequest, "missing 's' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, normalizeResponse{Input: in, Normalized: grieks.Normalize(in)})
	}
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
