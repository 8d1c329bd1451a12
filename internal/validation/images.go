package validation

import (
	"mime/multipart"

	validatorv10 "github.com/go-playground/validator/v10"
)

// MaxImageSize is the upload limit for every image field.
const MaxImageSize = 2 * 1024 * 1024

var (
	photoTypes    = []string{"image/jpeg", "image/png"}
	categoryTypes = []string{"image/jpeg", "image/png", "image/svg+xml"}
)

// ImageProblem returns the message for an unacceptable upload, or "" when
// fh is fine. A nil header is not checked here.
func ImageProblem(fh *multipart.FileHeader, allowed []string, typeMsg, sizeMsg string) string {
	if fh == nil {
		return ""
	}
	ct := fh.Header.Get("Content-Type")
	ok := false
	for _, a := range allowed {
		if ct == a {
			ok = true
			break
		}
	}
	if !ok {
		return typeMsg
	}
	if fh.Size > MaxImageSize {
		return sizeMsg
	}
	return ""
}

// PhotoProblem checks a JPEG/PNG upload.
func PhotoProblem(fh *multipart.FileHeader) string {
	return ImageProblem(fh, photoTypes, "Only JPEG, PNG images are allowed!", "Image must not be greater than 2MB!")
}

func categoryImageProblem(fh *multipart.FileHeader) string {
	return ImageProblem(fh, categoryTypes, "Only JPEG, PNG, SVG images are allowed!", "Image must not be greater than 2MB!")
}

func categoryCreateStructValidation(sl validatorv10.StructLevel) {
	in := sl.Current().Interface().(CategoryInput)
	if in.Image == nil {
		Report(sl, in.Image, "image", "Category image is required!")
		return
	}
	if msg := categoryImageProblem(in.Image); msg != "" {
		Report(sl, in.Image, "image", msg)
	}
}

func categoryUpdateStructValidation(sl validatorv10.StructLevel) {
	in := sl.Current().Interface().(CategoryUpdateInput)
	if msg := categoryImageProblem(in.Image); msg != "" {
		Report(sl, in.Image, "image", msg)
	}
}

func productCreateStructValidation(sl validatorv10.StructLevel) {
	in := sl.Current().Interface().(ProductInput)
	if len(in.Images) == 0 {
		Report(sl, in.Images, "images", "At least 1 product image is required!")
		return
	}
	reportProductImages(sl, in.Images)
}

func productUpdateStructValidation(sl validatorv10.StructLevel) {
	in := sl.Current().Interface().(ProductUpdateInput)
	reportProductImages(sl, in.Images)
}

// reportProductImages reports at most one type and one size problem for
// the whole set, as the form shows a single message per field.
func reportProductImages(sl validatorv10.StructLevel, images []*multipart.FileHeader) {
	var badType, tooBig bool
	for _, fh := range images {
		switch PhotoProblem(fh) {
		case "Only JPEG, PNG images are allowed!":
			badType = true
		case "Image must not be greater than 2MB!":
			tooBig = true
		}
	}
	if badType {
		Report(sl, images, "images", "Only JPEG, PNG images are allowed!")
	}
	if tooBig {
		Report(sl, images, "images", "Each image must not be greater than 2MB!")
	}
}
