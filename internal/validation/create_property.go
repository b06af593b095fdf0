package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/elbarryamine/atikia-plugin-server/internal/dtos"
	"github.com/elbarryamine/atikia-plugin-server/internal/utils"
)

var validate = newValidator()

// newValidator reports field paths by json tag name so errors match the
// wire payload ("propertyRentContractMonths", not the Go field name).
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError names one violated rule on one field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors aggregates every violation for a submission. The bulk
// endpoint flattens it into the per-item error string.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

/*
NormalizedProperty is the submission after presence rules and the
type-conditional transform pass. Only fields relevant to the resolved
type survive; rent fields are present iff transactionType is for_rent.
*/
type NormalizedProperty struct {
	Title       *string
	Description string

	Type             string
	TransactionType  string
	PropertyStyle    string
	PropertyUsage    string
	IsFurnished      bool
	FinishingQuality string
	SunLightLevel    string
	YearBuilt        int

	Price        int
	IsNegotiable bool

	PropertyRentContractMonths *int
	PropertyRentDepositMonths  *int

	Latitude       float64
	Longitude      float64
	FullAddress    *string
	CompactAddress *string

	FloorNumber       *int
	TotalFloor        *int
	TotalWaterClosets *int
	TotalBathrooms    *int
	TotalBedrooms     *int
	TotalSalons       *int
	TotalKitchens     *int
	AreaSize          *int
	BuildingSize      *int

	YoutubeVideoURL *string
	MatterPortURL   *string
	FloorPlanURL    *string

	CoverImageID    string
	GalleryImageIDs []string

	VisitDays  []string
	AmenityIDs []string
}

// residentialTypes is the subset of property types allowed when
// propertyUsage is residential.
var residentialTypes = map[string]bool{
	"apartment": true,
	"house":     true,
	"riads":     true,
	"villa":     true,
	"studio":    true,
	"duplex":    true,
}

/*
ValidateCreateProperty maps one raw submission to its normalized record,
or to the full list of violations. It never returns a partial result:
the transform pass only runs once every presence check has passed.
*/
func ValidateCreateProperty(sub *dtos.PropertySubmission) (*NormalizedProperty, FieldErrors) {
	if errs := structErrors(sub); len(errs) > 0 {
		return nil, errs
	}

	var errs FieldErrors
	errs = append(errs, usageErrors(sub)...)
	errs = append(errs, rentErrors(sub)...)
	errs = append(errs, typeRequirementErrors(sub)...)
	if len(errs) > 0 {
		return nil, errs
	}

	return transform(sub), nil
}

// structErrors runs the scalar/enum bounds declared on the struct tags.
func structErrors(sub *dtos.PropertySubmission) FieldErrors {
	err := validate.Struct(sub)
	if err == nil {
		return nil
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{{Field: "submission", Message: err.Error()}}
	}

	var out FieldErrors
	for _, fe := range validationErrs {
		out = append(out, FieldError{Field: fe.Field(), Message: boundsMessage(fe)})
	}
	return out
}

// boundsMessage keeps the messages the plugin already displays for the
// fields that have bespoke wording, and falls back to a generic tag
// description for the rest.
func boundsMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "description":
		if fe.Tag() == "min" {
			return "Description must be at least 10 characters"
		}
	case "yearBuilt":
		return "Year built must be a valid year"
	case "price":
		return "Price must be greater than 0"
	case "areaSize":
		return "Area size must be provided"
	case "buildingSize":
		return "Building size must be provided"
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", fe.Field())
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("Field '%s' must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("Field '%s' must be one of [%s]", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("Field '%s' must be a valid URL", fe.Field())
	case "uuid":
		return fmt.Sprintf("Field '%s' must be a valid UUID", fe.Field())
	default:
		return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
	}
}

func usageErrors(sub *dtos.PropertySubmission) FieldErrors {
	if sub.PropertyUsage == "residential" && !residentialTypes[sub.Type] {
		return FieldErrors{{
			Field:   "type",
			Message: "When propertyUsage is residential, only apartment, house, riads, villa, studio, and duplex are allowed",
		}}
	}
	return nil
}

func rentErrors(sub *dtos.PropertySubmission) FieldErrors {
	if sub.TransactionType != "for_rent" {
		return nil
	}
	var out FieldErrors
	if sub.PropertyRentContractMonths == nil {
		out = append(out, FieldError{
			Field:   "propertyRentContractMonths",
			Message: "propertyRentContractMonths is required when transactionType is for_rent",
		})
	}
	if sub.PropertyRentDepositMonths == nil {
		out = append(out, FieldError{
			Field:   "propertyRentDepositMonths",
			Message: "propertyRentDepositMonths is required when transactionType is for_rent",
		})
	}
	return out
}

// presence maps a detail field name to whether the submission carries it.
func presence(sub *dtos.PropertySubmission) map[string]bool {
	return map[string]bool{
		"floorNumber":       sub.FloorNumber != nil,
		"totalFloor":        sub.TotalFloor != nil,
		"totalWaterClosets": sub.TotalWaterClosets != nil,
		"totalBathrooms":    sub.TotalBathrooms != nil,
		"totalBedrooms":     sub.TotalBedrooms != nil,
		"totalSalons":       sub.TotalSalons != nil,
		"totalKitchens":     sub.TotalKitchens != nil,
		"buildingSize":      sub.BuildingSize != nil,
	}
}

// typeRequirementErrors enforces the per-type required-field table. The
// label mirrors the wording the main backend uses for the grouped types.
func typeRequirementErrors(sub *dtos.PropertySubmission) FieldErrors {
	var required []string
	label := sub.Type

	switch sub.Type {
	case "apartment", "studio", "duplex":
		required = []string{"floorNumber", "totalBedrooms", "totalBathrooms", "totalSalons", "totalKitchens", "buildingSize"}
	case "house", "riads", "villa":
		required = []string{"totalFloor", "totalBedrooms", "totalBathrooms", "totalSalons", "totalKitchens"}
		label = "house/riad/villa"
	case "office":
		required = []string{"floorNumber", "totalKitchens", "totalWaterClosets"}
	case "garage":
		required = []string{"totalFloor", "totalWaterClosets"}
	default:
		return nil
	}

	have := presence(sub)
	var out FieldErrors
	for _, field := range required {
		if !have[field] {
			out = append(out, FieldError{
				Field:   field,
				Message: fmt.Sprintf("%s is required for %s", field, label),
			})
		}
	}
	return out
}

// transform applies the type-conditional reshaping: rent fields survive
// only for rentals, apartment-family sizes map onto areaSize with forced
// floor counts, and fields irrelevant to the type are dropped.
func transform(sub *dtos.PropertySubmission) *NormalizedProperty {
	n := &NormalizedProperty{
		Title:            sub.Title,
		Description:      sub.Description,
		Type:             sub.Type,
		TransactionType:  sub.TransactionType,
		PropertyStyle:    sub.PropertyStyle,
		PropertyUsage:    sub.PropertyUsage,
		IsFurnished:      sub.IsFurnished != nil && *sub.IsFurnished,
		FinishingQuality: sub.FinishingQuality,
		SunLightLevel:    sub.SunLightLevel,
		YearBuilt:        sub.YearBuilt,
		Price:            sub.Price,
		IsNegotiable:     sub.IsNegotiable == nil || *sub.IsNegotiable,

		PropertyRentContractMonths: sub.PropertyRentContractMonths,
		PropertyRentDepositMonths:  sub.PropertyRentDepositMonths,

		Latitude:       *sub.Latitude,
		Longitude:      *sub.Longitude,
		FullAddress:    sub.FullAddress,
		CompactAddress: sub.CompactAddress,

		FloorNumber:       sub.FloorNumber,
		TotalFloor:        sub.TotalFloor,
		TotalWaterClosets: sub.TotalWaterClosets,
		TotalBathrooms:    sub.TotalBathrooms,
		TotalBedrooms:     sub.TotalBedrooms,
		TotalSalons:       sub.TotalSalons,
		TotalKitchens:     sub.TotalKitchens,
		AreaSize:          sub.AreaSize,
		BuildingSize:      sub.BuildingSize,

		YoutubeVideoURL: sub.YoutubeVideoURL,
		MatterPortURL:   sub.MatterPortURL,
		FloorPlanURL:    sub.FloorPlanURL,

		CoverImageID:    sub.CoverImageID,
		GalleryImageIDs: sub.GalleryImageIDs,

		VisitDays:  sub.VisitDays,
		AmenityIDs: sub.AmenityIDs,
	}

	if n.TransactionType == "for_sale" {
		n.PropertyRentContractMonths = nil
		n.PropertyRentDepositMonths = nil
	}

	switch n.Type {
	case "apartment":
		if n.BuildingSize != nil {
			n.AreaSize = utils.Ptr(*n.BuildingSize)
		}
		if n.TotalFloor == nil {
			n.TotalFloor = utils.Ptr(1)
		}
	case "studio":
		if n.BuildingSize != nil {
			n.AreaSize = utils.Ptr(*n.BuildingSize)
		}
		n.TotalFloor = utils.Ptr(1)
	case "duplex":
		if n.BuildingSize != nil {
			n.AreaSize = utils.Ptr(*n.BuildingSize)
		}
		n.TotalFloor = utils.Ptr(2)
	case "house", "riads", "villa":
		n.FloorNumber = nil
	case "office":
		n.TotalBedrooms = nil
		n.TotalBathrooms = nil
		n.TotalSalons = nil
	case "garage":
		n.FloorNumber = nil
		n.TotalBedrooms = nil
		n.TotalBathrooms = nil
		n.TotalSalons = nil
		n.TotalKitchens = nil
	}

	return n
}
