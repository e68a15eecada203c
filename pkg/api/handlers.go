package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ssargent/csxhair/pkg/crosshair"
	"github.com/ssargent/csxhair/pkg/cvar"
)

// maxBodyBytes bounds request bodies; a settings object is well under 1 KiB.
const maxBodyBytes = 4 << 10

// Server holds the API server state
type Server struct {
	codec          ShareCodec
	defaultVariant cvar.Variant
	metrics        *Metrics
	logger         zerolog.Logger
}

// NewServer creates a new API server. metrics may be nil.
func NewServer(codec ShareCodec, defaultVariant cvar.Variant, metrics *Metrics, logger zerolog.Logger) *Server {
	return &Server{
		codec:          codec,
		defaultVariant: defaultVariant,
		metrics:        metrics,
		logger:         logger,
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, r, map[string]string{"status": "healthy"})
}

// handleDecode godoc
//
//	@Summary		Decode a share code
//	@Tags			crosshair
//	@Accept			json
//	@Produce		json
//	@Param			body	body		DecodeRequest	true	"Share code"
//	@Param			variant	query		string			false	"Command variant (csgo or cs2)"
//	@Success		200		{object}	CrosshairResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/api/v1/decode [post]
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if err := decodeBody(w, r, &req); err != nil {
		sendError(w, r, err.Error(), http.StatusBadRequest)
		return
	}
	s.respondDecoded(w, r, req.Code)
}

// handleGetCrosshair godoc
//
//	@Summary		Decode a share code from the path
//	@Tags			crosshair
//	@Produce		json
//	@Param			code	path		string	true	"Share code"
//	@Param			variant	query		string	false	"Command variant (csgo or cs2)"
//	@Success		200		{object}	CrosshairResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/api/v1/crosshairs/{code} [get]
func (s *Server) handleGetCrosshair(w http.ResponseWriter, r *http.Request) {
	s.respondDecoded(w, r, chi.URLParam(r, "code"))
}

// handleEncode godoc
//
//	@Summary		Encode crosshair settings
//	@Tags			crosshair
//	@Accept			json
//	@Produce		json
//	@Param			body	body		crosshair.Settings	true	"Crosshair settings"
//	@Param			variant	query		string				false	"Command variant (csgo or cs2)"
//	@Success		200		{object}	CrosshairResponse
//	@Failure		400		{object}	APIResponse
//	@Router			/api/v1/encode [post]
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	variant, err := s.variant(r)
	if err != nil {
		sendError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	var c crosshair.Crosshair
	if err := decodeBody(w, r, &c); err != nil {
		// Only a settings object that failed validation reached the codec.
		if errors.Is(err, crosshair.ErrFieldOutOfRange) {
			s.metrics.RecordCodecOperation("encode", err, time.Since(start))
			s.logFailure(r, "encode", err)
		}
		sendError(w, r, err.Error(), http.StatusBadRequest)
		return
	}
	code := s.codec.Encode(c)
	s.metrics.RecordCodecOperation("encode", nil, time.Since(start))

	sendSuccess(w, r, CrosshairResponse{
		Code:      code,
		Crosshair: c,
		Variant:   variant,
		Commands:  cvar.Commands(c, variant),
	})
}

// handleCommands godoc
//
//	@Summary		Console commands for a share code
//	@Tags			crosshair
//	@Produce		json
//	@Param			code	path		string	true	"Share code"
//	@Param			variant	query		string	false	"Command variant (csgo or cs2)"
//	@Success		200		{object}	CommandsResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/api/v1/crosshairs/{code}/commands [get]
func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	variant, err := s.variant(r)
	if err != nil {
		sendError(w, r, err.Error(), http.StatusBadRequest)
		return
	}
	c, ok := s.decode(w, r, chi.URLParam(r, "code"))
	if !ok {
		return
	}

	commands := cvar.Commands(c, variant)
	sendSuccess(w, r, CommandsResponse{
		Variant:  variant,
		Commands: commands,
		Script:   cvar.Script(commands),
	})
}

func (s *Server) respondDecoded(w http.ResponseWriter, r *http.Request, code string) {
	variant, err := s.variant(r)
	if err != nil {
		sendError(w, r, err.Error(), http.StatusBadRequest)
		return
	}
	c, ok := s.decode(w, r, code)
	if !ok {
		return
	}

	sendSuccess(w, r, CrosshairResponse{
		Code:      code,
		Crosshair: c,
		Variant:   variant,
		Commands:  cvar.Commands(c, variant),
	})
}

// decode runs the codec and writes the error response on failure
func (s *Server) decode(w http.ResponseWriter, r *http.Request, code string) (crosshair.Crosshair, bool) {
	start := time.Now()
	c, err := s.codec.Decode(code)
	s.metrics.RecordCodecOperation("decode", err, time.Since(start))
	if err != nil {
		s.logFailure(r, "decode", err)
		sendError(w, r, err.Error(), statusFor(err))
		return crosshair.Crosshair{}, false
	}
	return c, true
}

// variant reads ?variant= and falls back to the configured default
func (s *Server) variant(r *http.Request) (cvar.Variant, error) {
	raw := r.URL.Query().Get("variant")
	if raw == "" {
		return s.defaultVariant, nil
	}
	return cvar.ParseVariant(raw)
}

func (s *Server) logFailure(r *http.Request, operation string, err error) {
	s.logger.Warn().
		Str("request_id", RequestID(r.Context())).
		Str("operation", operation).
		Str("result", resultOf(err)).
		Err(err).
		Msg("share code operation failed")
}

// statusFor maps codec errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, crosshair.ErrInvalidFormat), errors.Is(err, crosshair.ErrInvalidCode):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var rangeErr *crosshair.FieldRangeError
		if errors.As(err, &rangeErr) {
			return err
		}
		return fmt.Errorf("invalid JSON in request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("invalid JSON in request body: unexpected data after the JSON value")
	}
	return nil
}
