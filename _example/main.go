// Command example serves the registration form over HTTP.
//
// Run:
//
//	go run ./_example
//
// Then submit the form:
//
//	curl -d fullName=Taro -d age=20 -d gender=male -d birthday=1990-01-01 \
//	     -d email=taro@example.com -d confirmEmail=taro@example.com \
//	     -d spouse=1 -d agree=on http://localhost:8080/register
//
// The OpenAPI document is served at http://localhost:8080/openapi.json.
package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/forms"
	"github.com/Gobd/formvalidation/internal/logger"
	"github.com/Gobd/formvalidation/openapi"
)

func main() {
	log, err := logger.New(logger.Options{Level: "debug"}, os.Stderr)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	doc := openapi.DocBase("Registration API", "Demonstrates formvalidation", "0.1.0")
	openapi.Post(doc, "/register", "register", openapi.Endpoint{
		Summary:  "Register a user",
		Request:  forms.Registration,
		Response: forms.Registration,
	})
	openapi.Post(doc, "/register/nested", "registerNested", openapi.Endpoint{
		Summary:  "Register a user, addresses grouped",
		Request:  forms.NestedRegistration,
		Response: forms.NestedRegistration,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, doc)
	})
	mux.HandleFunc("POST /register", register(log, forms.Registration))
	mux.HandleFunc("POST /register/nested", register(log, forms.NestedRegistration))

	log.Info("listening", zap.String("addr", "http://localhost:8080"))
	if err := http.ListenAndServe(":8080", mux); err != nil {
		log.Fatal("serve", zap.Error(err))
	}
}

func register(log *zap.Logger, schema *v.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := readBody(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		res := schema.SafeValidate(rec)
		if !res.OK() {
			log.Debug("rejected", zap.String("path", r.URL.Path), zap.Error(res.Err()))
			writeJSON(w, http.StatusBadRequest, res.Errors.Flat())
			return
		}
		writeJSON(w, http.StatusOK, res.Value)
	}
}

func readBody(r *http.Request) (v.Record, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return v.DecodeJSON(r.Body)
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return v.RecordFromForm(r.PostForm), nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
