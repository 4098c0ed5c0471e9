package handler

import "net/http"

const apiTitle = "Meghmehul Engineering Classes API"

// RegisterRootRoutes mounts the API index route and the JSON 404 fallback.
func RegisterRootRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			writeError(w, http.StatusNotFound, "Not Found")
			return
		}
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": apiTitle})
	})
}
