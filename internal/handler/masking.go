package handler

import (
	"MaskingBackend/internal/model"
	"MaskingBackend/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type PageData struct {
	Category string
	Index    int
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response to JSON: %v", err)
	}
}

// pathTarget reads {category} and {index}. The router already restricts
// index to digits, so a parse error only happens on overflow.
func pathTarget(r *http.Request) (string, int, error) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		return "", 0, fmt.Errorf("invalid index %q", vars["index"])
	}
	return vars["category"], index, nil
}

func Landing(s service.MaskingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := s.FirstCategory()
		if errors.Is(err, service.ErrNoCategories) {
			http.Error(w, "No categories found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("Error listing categories: %v", err)
			http.Error(w, fmt.Sprintf("Error: %v", err), http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/masking/"+url.PathEscape(category)+"/0", http.StatusFound)
	}
}

func MaskingPage(tmpl *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, index, err := pathTarget(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, PageData{Category: category, Index: index}); err != nil {
			log.Printf("Failed to render masking page: %v", err)
			http.Error(w, "Failed to render page", http.StatusInternalServerError)
		}
	}
}

// GetMaskingData never answers with a server error: failures tell the client
// whether to fall back to editing files locally.
func GetMaskingData(s service.MaskingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, index, err := pathTarget(r)
		if err != nil {
			writeJSON(w, http.StatusOK, model.MaskingDataResponse{Message: "image does not exist"})
			return
		}

		data, err := s.GetMaskingData(category, index)
		switch {
		case errors.Is(err, service.ErrDirectoryMissing):
			writeJSON(w, http.StatusOK, model.MaskingDataResponse{Message: "directory missing", UseLocalFiles: true})
			return
		case errors.Is(err, service.ErrFileMissing):
			writeJSON(w, http.StatusOK, model.MaskingDataResponse{Message: "image does not exist"})
			return
		case err != nil:
			// Permission errors and the like land here too and get the same
			// local-files hint as a missing directory.
			log.Printf("Error fetching masking data for %s/%d: %v", category, index, err)
			writeJSON(w, http.StatusOK, model.MaskingDataResponse{Message: err.Error(), UseLocalFiles: true})
			return
		}

		resp := model.MaskingDataResponse{Result: true, Image: data.Image, Mask: false}
		if data.Mask != "" {
			resp.Mask = data.Mask
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func SaveMask(s service.MaskingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, index, err := pathTarget(r)
		if err != nil {
			writeJSON(w, http.StatusOK, model.ResultResponse{Message: "index out of range"})
			return
		}

		var req model.SaveMaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding save request: %v", err)
			writeJSON(w, http.StatusBadRequest, model.ResultResponse{Message: "invalid request body"})
			return
		}

		err = s.SaveMask(category, index, req)
		switch {
		case errors.Is(err, service.ErrIndexOutOfRange):
			writeJSON(w, http.StatusOK, model.ResultResponse{Message: "index out of range"})
			return
		case errors.Is(err, service.ErrFileMissing):
			writeJSON(w, http.StatusOK, model.ResultResponse{Message: "image does not exist"})
			return
		case err != nil:
			log.Printf("Error saving mask for %s/%d: %v", category, index, err)
			writeJSON(w, http.StatusOK, model.ResultResponse{Message: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, model.ResultResponse{Result: true})
	}
}

func ListCategories(s service.MaskingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := s.ListCategories()
		if err != nil {
			log.Printf("Error listing categories: %v", err)
			writeJSON(w, http.StatusInternalServerError, model.CategoriesResponse{Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, model.CategoriesResponse{Result: true, Categories: categories})
	}
}

func GetThumbnail(s service.MaskingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, index, err := pathTarget(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		data, mimeType, err := s.Thumbnail(category, index)
		if errors.Is(err, service.ErrDirectoryMissing) || errors.Is(err, service.ErrFileMissing) {
			http.Error(w, "Image does not exist", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("Error generating thumbnail for %s/%d: %v", category, index, err)
			http.Error(w, "Failed to generate thumbnail", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", mimeType)
		if _, err := w.Write(data); err != nil {
			log.Printf("Error writing thumbnail: %v", err)
		}
	}
}

func ListAnnotations(s service.MaskingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := mux.Vars(r)["category"]

		annotations, err := s.ListAnnotations(category)
		if errors.Is(err, service.ErrJournalDisabled) {
			writeJSON(w, http.StatusOK, model.AnnotationsResponse{Message: err.Error()})
			return
		}
		if err != nil {
			log.Printf("Error listing annotations for %s: %v", category, err)
			writeJSON(w, http.StatusInternalServerError, model.AnnotationsResponse{Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, model.AnnotationsResponse{Result: true, Annotations: annotations})
	}
}
