package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"pocketledger/internal/models"
	"pocketledger/pkg/utils"
)

// PathID reads an integer path value. On failure it answers 400 and
// returns false.
func PathID(w http.ResponseWriter, r *http.Request, name, label string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		utils.WriteError(w, "invalid "+label+" ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func PathDate(w http.ResponseWriter, r *http.Request, name string) (models.Date, bool) {
	d, err := models.ParseDate(r.PathValue(name))
	if err != nil {
		utils.WriteError(w, "invalid "+name+": expected YYYY-MM-DD", http.StatusBadRequest)
		return models.Date{}, false
	}
	return d, true
}

// DecodeBody reads a single JSON object into dst. Unknown fields and
// trailing data are rejected with 400.
func DecodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		msg := "invalid or unexpected fields in body"
		if errors.Is(err, io.EOF) {
			msg = "request body is empty"
		}
		utils.WriteError(w, msg, http.StatusBadRequest)
		return false
	}
	if decoder.More() {
		utils.WriteError(w, "request body must contain a single JSON object", http.StatusBadRequest)
		return false
	}
	return true
}

// StoreFailed answers 500 for a failed data access call. The store has
// already logged the cause.
func StoreFailed(w http.ResponseWriter, r *http.Request, err error, message string) {
	utils.Logger.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).WithError(err).Debug(message)
	utils.WriteError(w, message, http.StatusInternalServerError)
}

// WriteResult answers 500 when the store call failed and writes v otherwise.
func WriteResult(w http.ResponseWriter, r *http.Request, v any, err error, message string) {
	if err != nil {
		StoreFailed(w, r, err, message)
		return
	}
	utils.WriteJSON(w, v)
}
