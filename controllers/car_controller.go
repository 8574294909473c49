// File: /controllers/car_controller.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"cars-api/errs"
	"cars-api/models"
	"cars-api/utils"
)

const (
	MsgInvalidID      = "Invalid car ID"
	MsgFieldsRequired = "Brand, model, and year are required"
	MsgInvalidYear    = "Year must be a valid number"
	MsgInvalidBody    = "Invalid request body"
	MsgNotFound       = "Car not found"

	MsgCreated = "Car created successfully"
	MsgUpdated = "Car updated successfully"
	MsgDeleted = "Car deleted successfully"
)

// CarService is what the controller needs from services.CarService.
type CarService interface {
	GetAllCars(ctx context.Context) ([]models.Car, error)
	GetCarByID(ctx context.Context, id int) (*models.Car, error)
	AddCar(ctx context.Context, req models.CarRequest) (*models.Car, error)
	UpdateCar(ctx context.Context, id int, req models.CarRequest) (*models.Car, error)
	DeleteCar(ctx context.Context, id int) (bool, error)
}

type CarController struct {
	service CarService
	logger  zerolog.Logger
}

func NewCarController(service CarService, logger zerolog.Logger) *CarController {
	utils.SetupBinding()
	return &CarController{
		service: service,
		logger:  logger.With().Str("component", "car_controller").Logger(),
	}
}

type CreateCarRequest struct {
	Brand string               `json:"brand" binding:"required"`
	Model string               `json:"model" binding:"required"`
	Year  models.NumericString `json:"year" binding:"required,leadingint"`
}

type UpdateCarRequest struct {
	Brand string               `json:"brand"`
	Model string               `json:"model"`
	Year  models.NumericString `json:"year" binding:"omitempty,leadingint"`
}

func (cc *CarController) GetCars(c *gin.Context) {
	cars, err := cc.service.GetAllCars(c.Request.Context())
	if err != nil {
		cc.respondError(c, err)
		return
	}

	utils.SendData(c, cars)
}

func (cc *CarController) GetCar(c *gin.Context) {
	id, ok := utils.ParseLeadingInt(c.Param("id"))
	if !ok {
		cc.respondError(c, errs.Validation(MsgInvalidID))
		return
	}

	car, err := cc.service.GetCarByID(c.Request.Context(), id)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	if car == nil {
		cc.respondError(c, errs.NotFound(MsgNotFound))
		return
	}

	utils.SendData(c, car)
}

func (cc *CarController) CreateCar(c *gin.Context) {
	var req CreateCarRequest
	if err := cc.bind(c, &req); err != nil {
		cc.respondError(c, err)
		return
	}

	car, err := cc.service.AddCar(c.Request.Context(), models.CarRequest{
		Brand: req.Brand,
		Model: req.Model,
		Year:  req.Year,
	})
	if err != nil {
		cc.respondError(c, err)
		return
	}

	utils.SendCreated(c, MsgCreated, car)
}

func (cc *CarController) UpdateCar(c *gin.Context) {
	id, ok := utils.ParseLeadingInt(c.Param("id"))
	if !ok {
		cc.respondError(c, errs.Validation(MsgInvalidID))
		return
	}

	var req UpdateCarRequest
	if err := cc.bind(c, &req); err != nil {
		cc.respondError(c, err)
		return
	}

	car, err := cc.service.UpdateCar(c.Request.Context(), id, models.CarRequest{
		Brand: req.Brand,
		Model: req.Model,
		Year:  req.Year,
	})
	if err != nil {
		cc.respondError(c, err)
		return
	}
	if car == nil {
		cc.respondError(c, errs.NotFound(MsgNotFound))
		return
	}

	utils.SendSuccess(c, MsgUpdated, car)
}

func (cc *CarController) DeleteCar(c *gin.Context) {
	id, ok := utils.ParseLeadingInt(c.Param("id"))
	if !ok {
		cc.respondError(c, errs.Validation(MsgInvalidID))
		return
	}

	removed, err := cc.service.DeleteCar(c.Request.Context(), id)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	if !removed {
		cc.respondError(c, errs.NotFound(MsgNotFound))
		return
	}

	utils.SendSuccess(c, MsgDeleted, nil)
}

// bind runs gin's JSON binding and maps its failures onto the error
// taxonomy. An empty body binds as an empty object.
func (cc *CarController) bind(c *gin.Context, req interface{}) error {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(req)
	}
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errs.MalformedBody(err)
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Unknown fields and type mismatches.
		return errs.Validation(MsgInvalidBody)
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return errs.Validation(MsgFieldsRequired)
		}
	}
	return errs.Validation(MsgInvalidYear)
}

// respondError maps err to a status through its errs.Kind. Body parse
// failures are handed to the terminal error handler.
func (cc *CarController) respondError(c *gin.Context, err error) {
	e, ok := errs.As(err)
	if !ok {
		e = errs.Internal(err)
	}

	switch e.Kind {
	case errs.KindMalformedBody:
		_ = c.Error(e)
		c.Abort()
		return
	case errs.KindValidation, errs.KindNotFound:
		cc.logger.Debug().Str("kind", e.Kind.String()).Str("path", c.FullPath()).Msg(e.Message)
	case errs.KindInternal:
		cc.logger.Error().Err(e.Err).Str("path", c.FullPath()).Msg("unexpected error")
	}

	utils.SendError(c, e.Status(), e.Message)
}
