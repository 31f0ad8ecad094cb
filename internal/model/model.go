package model

import "time"

type Category struct {
	Name       string `json:"name"`
	ImageCount int    `json:"imageCount"`
	MaskCount  int    `json:"maskCount"`
}

type MaskingData struct {
	Image string
	// Mask is empty when the image has no mask yet.
	Mask string
}

type MaskingDataResponse struct {
	Result        bool   `json:"result"`
	Message       string `json:"message,omitempty"`
	UseLocalFiles bool   `json:"useLocalFiles,omitempty"`
	Image         string `json:"image,omitempty"`
	// Mask holds a data URI string or false.
	Mask interface{} `json:"mask,omitempty"`
}

type SaveMaskRequest struct {
	Mask           string `json:"mask"`
	ClientSideFile bool   `json:"clientSideFile"`
}

type ResultResponse struct {
	Result  bool   `json:"result"`
	Message string `json:"message,omitempty"`
}

type CategoriesResponse struct {
	Result     bool       `json:"result"`
	Message    string     `json:"message,omitempty"`
	Categories []Category `json:"categories,omitempty"`
}

type Annotation struct {
	Category  string    `json:"category"`
	ImageName string    `json:"image_name"`
	MaskName  string    `json:"mask_name"`
	ByteSize  int       `json:"byte_size"`
	SavedAt   time.Time `json:"saved_at"`
}

type AnnotationsResponse struct {
	Result      bool         `json:"result"`
	Message     string       `json:"message,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}
