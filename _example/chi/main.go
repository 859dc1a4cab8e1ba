// Command chi serves the registration form with a chi router.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then POST the form to http://localhost:8080/register.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/forms"
	"github.com/Gobd/formvalidation/openapi"
	"github.com/go-chi/chi/v5"
)

func main() {
	doc := openapi.DocBase("Registration API (chi)", "Demonstrates formvalidation with chi", "0.1.0")

	openapi.Post(doc, "/register", "register", openapi.Endpoint{
		Summary:  "Register a user",
		Request:  forms.Registration,
		Response: forms.Registration,
	})

	r := chi.NewRouter()

	r.Get("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, doc)
	})

	r.Post("/register", func(w http.ResponseWriter, r *http.Request) {
		var rec v.Record
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			var err error
			if rec, err = v.DecodeJSON(r.Body); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			rec = v.RecordFromForm(r.PostForm)
		}

		res := forms.Registration.SafeValidate(rec)
		if !res.OK() {
			writeJSON(w, http.StatusBadRequest, res.Errors.Flat())
			return
		}
		var data forms.Data
		if err := res.Decode(&data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, data)
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
