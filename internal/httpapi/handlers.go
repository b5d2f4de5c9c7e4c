package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"croprecd/internal/predict"
	"croprecd/pkg/types"
)

type handlers struct {
	svc Service
}

// root godoc
// @Summary      Service banner
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthCheck
// @Router       / [get]
func (h *handlers) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, types.HealthCheck{Status: "healthy", Message: "Crop Recommendation API is running", Version: types.APIVersion})
}

// health godoc
// @Summary      Model health
// @Description  Reports healthy only when every artifact is loaded. Always 200.
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthCheck
// @Router       /health [get]
func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Health())
}

// predict godoc
// @Summary      Recommend a crop
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        request  body      types.SoilParameters  true  "Soil and climate parameters"
// @Success      200      {object}  types.PredictionResult
// @Failure      400      {object}  types.ErrorResponse
// @Failure      415      {object}  types.ErrorResponse
// @Failure      422      {object}  types.ErrorResponse
// @Failure      500      {object}  types.ErrorResponse
// @Failure      503      {object}  types.ErrorResponse
// @Router       /predict [post]
func (h *handlers) predict(w http.ResponseWriter, r *http.Request) {
	in := h.svc.NewInput()
	if !decodeJSON(w, r, in) {
		return
	}
	ctx, cancel := predictContext(r)
	defer cancel()
	res, err := h.svc.Predict(ctx, in)
	if err != nil {
		// Client went away; nobody is left to answer.
		if r.Context().Err() != nil {
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, res)
}

// predictBatch godoc
// @Summary      Recommend crops for up to 100 inputs
// @Description  All-or-nothing: any invalid item rejects the whole batch.
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        request  body      []types.SoilParameters  true  "Inputs"
// @Success      200      {array}   types.PredictionResult
// @Failure      400      {object}  types.ErrorResponse
// @Failure      422      {object}  types.ErrorResponse
// @Failure      503      {object}  types.ErrorResponse
// @Router       /predict/batch [post]
func (h *handlers) predictBatch(w http.ResponseWriter, r *http.Request) {
	var raw []json.RawMessage
	if !decodeJSON(w, r, &raw) {
		return
	}
	inputs := make([]types.Input, len(raw))
	// Oversized batches are rejected by the service before items are decoded.
	if len(raw) <= predict.MaxBatchSize {
		for i, item := range raw {
			in := h.svc.NewInput()
			if err := json.Unmarshal(item, in); err != nil {
				writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
				return
			}
			inputs[i] = in
		}
	}
	ctx, cancel := predictContext(r)
	defer cancel()
	res, err := h.svc.PredictBatch(ctx, inputs)
	if err != nil {
		if r.Context().Err() != nil {
			return
		}
		writeServiceError(w, err)
		return
	}
	if res == nil {
		res = []types.PredictionResult{}
	}
	writeJSON(w, res)
}

// crops godoc
// @Summary      List crops
// @Tags         metadata
// @Produce      json
// @Success      200  {object}  types.CropsResponse
// @Failure      503  {object}  types.ErrorResponse
// @Router       /crops [get]
func (h *handlers) crops(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Crops()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, res)
}

// soilTypes godoc
// @Summary      List soil types
// @Tags         metadata
// @Produce      json
// @Success      200  {object}  types.SoilTypesResponse
// @Failure      503  {object}  types.ErrorResponse
// @Router       /soil-types [get]
func (h *handlers) soilTypes(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.SoilTypes()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, res)
}

// modelInfo godoc
// @Summary      Describe the loaded model
// @Tags         metadata
// @Produce      json
// @Success      200  {object}  types.ModelInfo
// @Failure      503  {object}  types.ErrorResponse
// @Router       /model/info [get]
func (h *handlers) modelInfo(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ModelInfo()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, res)
}

// validate godoc
// @Summary      Validate parameters without predicting
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        request  body      types.SoilTypeParameters  true  "Parameters"
// @Success      200      {object}  types.ValidationResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      422      {object}  types.ErrorResponse
// @Failure      503      {object}  types.ErrorResponse
// @Router       /validate [post]
func (h *handlers) validate(w http.ResponseWriter, r *http.Request) {
	in := h.svc.NewInput()
	if !decodeJSON(w, r, in) {
		return
	}
	res, err := h.svc.Validate(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, res)
}

// decodeJSON enforces the JSON content type and body size limit and decodes
// the body, which must hold exactly one JSON value, into v. It writes the
// error response and returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mt != "application/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	err = dec.Decode(v)
	if err == nil {
		if extra := dec.Decode(&json.RawMessage{}); extra != io.EOF {
			err = extra
			if err == nil {
				err = errors.New("trailing data after JSON body")
			}
		}
	}
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
