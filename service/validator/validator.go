// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/service/wallet"
	"github.com/optakt/wallet-kit/wallet/entity"
	"github.com/optakt/wallet-kit/wallet/factor"
	"github.com/optakt/wallet-kit/wallet/failure"
	"github.com/optakt/wallet-kit/wallet/keys"
)

// Field names are mandatory arguments of `ReportError`. They end up in the
// returned failure.
const (
	sourceField      = "source_id"
	networkField     = "network"
	displayNameField = "display_name"
	appearanceField  = "appearance_id"
)

// Validator checks wallet service requests before any key material is
// touched.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {

	v := Validator{
		validate: newRequestValidator(),
	}

	return &v
}

func newRequestValidator() *validator.Validate {

	v := validator.New()

	// A single type is registered per validator function, so the functions can
	// safely assert the type of the current value.
	v.RegisterStructValidation(sourceIDValidator, factor.SourceID{})
	v.RegisterStructValidation(createAccountValidator, wallet.CreateAccountRequest{})
	v.RegisterStructValidation(createPersonaValidator, wallet.CreatePersonaRequest{})

	return v
}

// Request validates the request and returns the first problem found as a
// failure.InvalidRequest.
func (v *Validator) Request(request interface{}) error {

	err := v.validate.Struct(request)
	if err == nil {
		return nil
	}

	// InvalidValidationError is returned for invalid usage, such as passing a
	// value that is not a struct.
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("could not validate request: %w", err)
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fmt.Errorf("could not validate request: %w", err)
	}

	return failure.InvalidRequest{
		Description: failure.NewDescription(errs[0].Tag()),
		Field:       errs[0].Field(),
	}
}

func sourceIDValidator(sl validator.StructLevel) {
	id := sl.Current().Interface().(factor.SourceID)
	_, err := factor.ParseSourceKind(string(id.Kind))
	if err != nil {
		sl.ReportError(id.Kind, sourceField, sourceField, sourceKindInvalid, "")
	}
	if id.Body == (keys.Hash{}) {
		sl.ReportError(id.Body, sourceField, sourceField, sourceBodyEmpty, "")
	}
}

func createAccountValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(wallet.CreateAccountRequest)
	validateNetwork(sl, req.Network)
	validateDisplayName(sl, req.DisplayName)
	if req.AppearanceID != nil && *req.AppearanceID > entity.MaxAppearanceID {
		sl.ReportError(*req.AppearanceID, appearanceField, appearanceField, appearanceOutOfRange, "")
	}
}

func createPersonaValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(wallet.CreatePersonaRequest)
	validateNetwork(sl, req.Network)
	validateDisplayName(sl, req.DisplayName)
}

func validateNetwork(sl validator.StructLevel, name string) {
	if name == "" {
		sl.ReportError(name, networkField, networkField, networkEmpty, "")
		return
	}
	_, err := network.LookupByName(name)
	if err != nil {
		sl.ReportError(name, networkField, networkField, networkUnknown, "")
	}
}

func validateDisplayName(sl validator.StructLevel, name string) {
	length := utf8.RuneCountInString(strings.TrimSpace(name))
	if length == 0 {
		sl.ReportError(name, displayNameField, displayNameField, displayNameEmpty, "")
	}
	if length > entity.MaxDisplayNameLength {
		sl.ReportError(name, displayNameField, displayNameField, displayNameTooLong, "")
	}
}
