// Command gorilla serves the nested registration form with a gorilla/mux
// router.
//
// Run:
//
//	cd _example/gorilla && go run .
//
// Then POST JSON to http://localhost:8080/register.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/forms"
	"github.com/Gobd/formvalidation/openapi"
	"github.com/gorilla/mux"
)

func main() {
	doc := openapi.DocBase("Registration API (gorilla)", "Demonstrates formvalidation with gorilla/mux", "0.1.0")

	openapi.Post(doc, "/register", "register", openapi.Endpoint{
		Summary:  "Register a user",
		Request:  forms.NestedRegistration,
		Response: forms.NestedRegistration,
	})

	r := mux.NewRouter()

	r.HandleFunc("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, doc)
	}).Methods(http.MethodGet)

	r.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		out, err := v.DecodeAndValidate(forms.NestedRegistration, r.Body)
		if err != nil {
			if errs, ok := v.AsErrors(err); ok {
				writeJSON(w, http.StatusBadRequest, errs.Tree())
				return
			}
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, out)
	}).Methods(http.MethodPost)

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
