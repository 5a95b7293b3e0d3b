package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"coursehub/global"
)

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageBody{Message: msg})
}

// writeInternal hides backing-store detail from the response; the request
// dies, the process keeps serving.
func writeInternal(w http.ResponseWriter, err error) {
	global.Logger.Error().Err(err).Msg("request failed")
	writeMessage(w, http.StatusInternalServerError, "internal error")
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	return id, err == nil
}
