package service

import (
	infraRepo "github.com/nilkanthplet/BP-1.0/internal/infrastructure/repository"
	"github.com/nilkanthplet/BP-1.0/pkg/apperror"
)

// classify maps a store error onto the application error taxonomy.
// Errors that already carry a status pass through unchanged.
func classify(err error, message string) error {
	if err == nil || apperror.IsAppError(err) {
		return err
	}
	return apperror.NewStorageError(message, err)
}

// classifyCreate is classify with unique-index violations reported as
// duplicates
func classifyCreate(err error, duplicateMessage, message string) error {
	if err != nil && infraRepo.IsDuplicateKey(err) {
		return apperror.NewDuplicateKeyError(duplicateMessage)
	}
	return classify(err, message)
}
