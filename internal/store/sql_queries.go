// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const timerConfigsTable = "timer_configs"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetTimerConfigQuery(accountID string) (string, []any, error) {
	return psql.
		Select("document").
		From(timerConfigsTable).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
}

func buildSaveTimerConfigQuery(accountID string, document []byte, updatedAt time.Time) (string, []any, error) {
	return psql.
		Insert(timerConfigsTable).
		Columns("account_id", "document", "updated_at").
		Values(accountID, string(document), updatedAt).
		Suffix("ON CONFLICT(account_id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at").
		ToSql()
}
