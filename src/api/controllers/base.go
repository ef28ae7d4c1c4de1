package controllers

import (
	"errors"

	"networth/src/utils"

	"github.com/jackc/pgx/v5"
)

// mapRepoError turns a missing-row error into a 404 and anything else into
// a 500, keeping persistence details out of response bodies.
func mapRepoError(err error, notFoundMessage string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return utils.NotFound(notFoundMessage)
	}
	return utils.InternalServerError(err.Error())
}
