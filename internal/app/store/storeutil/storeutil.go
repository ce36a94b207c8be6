// internal/app/store/storeutil/storeutil.go
package storeutil

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by stores when a document does not exist. Stores
// translate mongo.ErrNoDocuments so callers do not import the driver for
// error checks.
var ErrNotFound = errors.New("not found")

// Paginate returns *options.FindOptions with skip/limit given a 1-based page.
func Paginate(limit, page int64) *options.FindOptions {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	sk := (page - 1) * limit
	return options.Find().SetLimit(limit).SetSkip(sk)
}

// IsDuplicateKey reports whether err is a unique index violation (E11000).
// Used to turn duplicate slugs and emails into validation failures.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// NotFoundErr translates mongo.ErrNoDocuments into ErrNotFound, passing
// other errors through.
func NotFoundErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
