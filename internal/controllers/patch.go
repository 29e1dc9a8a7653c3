package controllers

import (
	"encoding/json"
	"errors"

	"lagnasohalaa/internal/validation"
)

// bindPatch builds the update codec for an entity: unmarshal its patch
// struct, validate only the supplied fields, then fold them into the stored
// record. Used as `bindPatch((*models.ProfilePatch).Apply)`.
func bindPatch[P, T any](apply func(*P, *T)) func(data []byte, m *T) error {
	return func(data []byte, m *T) error {
		var p P
		if err := json.Unmarshal(data, &p); err != nil {
			return errors.New("Invalid request data")
		}
		if err := validation.Struct(&p); err != nil {
			return err
		}
		apply(&p, m)
		return nil
	}
}

func validateEntity[T any](m *T) error {
	return validation.Struct(m)
}
