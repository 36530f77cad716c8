package validators

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var rules = map[string]validator.Func{
	"mmddyyyy": func(fl validator.FieldLevel) bool {
		return domain.ValidDate(fl.Field().String())
	},
	"clock12": func(fl validator.FieldLevel) bool {
		return domain.ValidTime(fl.Field().String())
	},
	"visit_type": func(fl validator.FieldLevel) bool {
		return domain.VisitType(fl.Field().String()).Valid()
	},
	"national_id": func(fl validator.FieldLevel) bool {
		return patient.ValidNationalID(fl.Field().String())
	},
	"eg_phone": func(fl validator.FieldLevel) bool {
		return patient.ValidPhone(fl.Field().String())
	},
	"blood_type": func(fl validator.FieldLevel) bool {
		return patient.ValidBloodType(fl.Field().String())
	},
	"staff_role": func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	},
}

// Register installs the clinic's custom tags on gin's binding validator.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validators: gin binding engine is not go-playground/validator")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
