package psqlbuilder

import "github.com/Masterminds/squirrel"

// psql билдер запросов с плейсхолдерами PostgreSQL ($1, $2, ...)
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select начинает построение SELECT запроса
func Select(columns ...string) squirrel.SelectBuilder {
	return psql.Select(columns...)
}

// Insert начинает построение INSERT запроса
func Insert(table string) squirrel.InsertBuilder {
	return psql.Insert(table)
}

// Update начинает построение UPDATE запроса
func Update(table string) squirrel.UpdateBuilder {
	return psql.Update(table)
}

// Delete начинает построение DELETE запроса
func Delete(table string) squirrel.DeleteBuilder {
	return psql.Delete(table)
}
