package main

import (
	"booking/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query helpers for the phone store models.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.PhoneModel{})

	g.Execute()
}
