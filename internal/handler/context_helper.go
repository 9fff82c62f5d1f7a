package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/middleware"
	"github.com/noah-isme/lms-api/internal/models"
	appErrors "github.com/noah-isme/lms-api/pkg/errors"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

// classRefParam reads /:subject/:number/:season/:year from the route.
func classRefParam(c *gin.Context) (dto.ClassRef, error) {
	number, err := intParam(c, "number")
	if err != nil {
		return dto.ClassRef{}, err
	}
	year, err := intParam(c, "year")
	if err != nil {
		return dto.ClassRef{}, err
	}
	return dto.ClassRef{
		Subject: strings.ToUpper(c.Param("subject")),
		Number:  number,
		Season:  titleCase(c.Param("season")),
		Year:    year,
	}, nil
}

func assignmentKeyParam(c *gin.Context) (models.AssignmentKey, error) {
	ref, err := classRefParam(c)
	if err != nil {
		return models.AssignmentKey{}, err
	}
	return models.AssignmentKey{
		CategoryKey: models.CategoryKey{ClassKey: ref.Key(), Category: c.Param("category")},
		Assignment:  c.Param("assignment"),
	}, nil
}

func intParam(c *gin.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		appErr := appErrors.Clone(appErrors.ErrValidation, "invalid path parameter")
		appErr.Fields = map[string]string{name: name + " must be a number"}
		return 0, appErr
	}
	return value, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func invalidPayload(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}
