package store

import (
	sq "github.com/Masterminds/squirrel"
)

const whitelistTable = "whitelist"

func buildListWhitelistQuery(d Dialect, owner string) (string, []any, error) {
	return sq.Select("login").
		From(whitelistTable).
		Where(sq.Eq{"owner": owner}).
		OrderBy("position ASC", "login ASC").
		PlaceholderFormat(d.placeholder()).
		ToSql()
}

// buildInsertWhitelistQuery appends login after the owner's current last
// position.
func buildInsertWhitelistQuery(d Dialect, owner, login string) (string, []any, error) {
	nextPosition := sq.Expr(
		"(SELECT COALESCE(MAX(position), 0) + 1 FROM "+whitelistTable+" WHERE owner = ?)", owner)

	return sq.Insert(whitelistTable).
		Columns("owner", "login", "position").
		Values(owner, login, nextPosition).
		PlaceholderFormat(d.placeholder()).
		ToSql()
}

func buildInsertWhitelistAtQuery(d Dialect, owner, login string, position int) (string, []any, error) {
	return sq.Insert(whitelistTable).
		Columns("owner", "login", "position").
		Values(owner, login, position).
		PlaceholderFormat(d.placeholder()).
		ToSql()
}

func buildDeleteWhitelistQuery(d Dialect, owner, login string) (string, []any, error) {
	return sq.Delete(whitelistTable).
		Where(sq.Eq{"owner": owner}).
		Where(sq.Eq{"login": login}).
		PlaceholderFormat(d.placeholder()).
		ToSql()
}

func buildClearWhitelistQuery(d Dialect, owner string) (string, []any, error) {
	return sq.Delete(whitelistTable).
		Where(sq.Eq{"owner": owner}).
		PlaceholderFormat(d.placeholder()).
		ToSql()
}
