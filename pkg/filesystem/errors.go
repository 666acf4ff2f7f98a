package filesystem

import (
	"github.com/lensvault/lensvault/pkg/serializer"
)

var (
	ErrBatchTooLarge       = serializer.NewError(serializer.CodeBatchTooLarge, "Too many files in one batch", nil)
	ErrEmptyBatch          = serializer.NewError(serializer.CodeParamErr, "Empty batch", nil)
	ErrUnknownStorageType  = serializer.NewError(serializer.CodeInternalSetting, "Unknown storage type", nil)
	ErrInsertFileRecord    = serializer.NewError(serializer.CodeDBError, "Failed to create file record", nil)
	ErrTagReconcile        = serializer.NewError(serializer.CodeDBError, "Failed to reconcile tags", nil)
	ErrIO                  = serializer.NewError(serializer.CodeIOFailed, "Failed to read file data", nil)
	ErrPersistInconsistent = serializer.NewError(serializer.CodePersistInconsistent, "Batch partially persisted, manual cleanup required", nil)
	ErrMetadataInvalid     = serializer.NewError(serializer.CodeMetadataTypeMismatch, "Metadata value does not match declared type", nil)
)
