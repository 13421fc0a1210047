package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	t := modelType(model)

	var columns []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

func modelType(model any) reflect.Type {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// Columns returns column names of a model in field order.
func Columns(model any) []string {
	t := modelType(model)
	var res []string
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("db"); tag != "" {
			res = append(res, tag)
		}
	}
	return res
}

// Values returns field values of a model in the order of Columns.
func Values(model any) []any {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()
	var res []any
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("db") != "" {
			res = append(res, v.Field(i).Interface())
		}
	}
	return res
}

// Run DDL methods
func (r Run) TableDDL() string {
	return generateDDL(r, r.TableName())
}

func (r Run) IndexDDL() []string {
	return []string{}
}

func (r Run) TableName() string {
	return "runs"
}

// SpecificGene DDL methods
func (g SpecificGene) TableDDL() string {
	return generateDDL(g, g.TableName())
}

func (g SpecificGene) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_specific_genes_run ON specific_genes(run_id);",
	}
}

func (g SpecificGene) TableName() string {
	return "specific_genes"
}

// ConservedRegion DDL methods
func (cr ConservedRegion) TableDDL() string {
	return generateDDL(cr, cr.TableName())
}

func (cr ConservedRegion) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_conserved_regions_run ON conserved_regions(run_id);",
	}
}

func (cr ConservedRegion) TableName() string {
	return "conserved_regions"
}

// RankedPrimer DDL methods
func (rp RankedPrimer) TableDDL() string {
	return generateDDL(rp, rp.TableName())
}

func (rp RankedPrimer) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_ranked_primers_run ON ranked_primers(run_id);",
		"CREATE INDEX IF NOT EXISTS idx_ranked_primers_seq ON ranked_primers(sequence_id);",
	}
}

func (rp RankedPrimer) TableName() string {
	return "ranked_primers"
}
