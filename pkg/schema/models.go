// Package schema provides database models for persisted gnprimer results.
// The same models serve the sqlite store (DDL from `ddl` tags) and the
// PostgreSQL store (GORM AutoMigrate from `gorm` tags).
package schema

// Model is a persisted table.
type Model interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Run is one invocation of an analysis command.
type Run struct {
	// ID is a random UUID of the run.
	ID string `db:"id" ddl:"TEXT PRIMARY KEY" gorm:"type:varchar(36);primaryKey"`

	// Command is the CLI command that produced results.
	Command string `db:"command" ddl:"TEXT NOT NULL" gorm:"type:varchar(50);not null"`

	// Input is the path of the main input file or directory.
	Input string `db:"input" ddl:"TEXT" gorm:"type:text"`

	// Genus is the target genus, if known.
	Genus string `db:"genus" ddl:"TEXT" gorm:"type:varchar(255)"`

	// TargetPrefix is the sample prefix of target genomes.
	TargetPrefix string `db:"target_prefix" ddl:"TEXT" gorm:"type:varchar(50)"`

	// Version of gnprimer.
	Version string `db:"version" ddl:"TEXT" gorm:"type:varchar(50)"`

	// StartedAt is RFC 3339 time of the run start.
	StartedAt string `db:"started_at" ddl:"TEXT" gorm:"type:varchar(50)"`
}

// SpecificGene is a gene present in all target genomes and absent from
// outgroups.
type SpecificGene struct {
	// ID is UUID v5 of run id and gene name.
	ID string `db:"id" ddl:"TEXT PRIMARY KEY" gorm:"type:varchar(36);primaryKey"`

	RunID string `db:"run_id" ddl:"TEXT NOT NULL" gorm:"type:varchar(36);not null;index"`

	// Ord keeps the order of genes in the presence table.
	Ord int `db:"ord" ddl:"INTEGER NOT NULL" gorm:"not null"`

	Gene string `db:"gene" ddl:"TEXT NOT NULL" gorm:"type:varchar(255);not null"`

	Annotation string `db:"annotation" ddl:"TEXT" gorm:"type:text"`
}

// ConservedRegion is the longest conserved window of a gene alignment.
// Genes without a window are stored with zero length.
type ConservedRegion struct {
	// ID is UUID v5 of run id and gene name.
	ID string `db:"id" ddl:"TEXT PRIMARY KEY" gorm:"type:varchar(36);primaryKey"`

	RunID string `db:"run_id" ddl:"TEXT NOT NULL" gorm:"type:varchar(36);not null;index"`

	Gene string `db:"gene" ddl:"TEXT NOT NULL" gorm:"type:varchar(255);not null"`

	// StartPos is 1-based.
	StartPos int `db:"start_pos" ddl:"INTEGER NOT NULL" gorm:"not null"`

	// EndPos is inclusive.
	EndPos int `db:"end_pos" ddl:"INTEGER NOT NULL" gorm:"not null"`

	Length int `db:"length" ddl:"INTEGER NOT NULL" gorm:"not null"`

	Consensus string `db:"consensus" ddl:"TEXT" gorm:"type:text"`

	// LengthClass is long, standard, acceptable, short or none.
	LengthClass string `db:"length_class" ddl:"TEXT" gorm:"type:varchar(20)"`
}

// RankedPrimer is a scored primer pair.
type RankedPrimer struct {
	// ID is UUID v5 of run id and pair id.
	ID string `db:"id" ddl:"TEXT PRIMARY KEY" gorm:"type:varchar(36);primaryKey"`

	RunID string `db:"run_id" ddl:"TEXT NOT NULL" gorm:"type:varchar(36);not null;index"`

	SequenceID string `db:"sequence_id" ddl:"TEXT NOT NULL" gorm:"type:varchar(255);not null;index"`
	PairIndex  int    `db:"pair_index" ddl:"INTEGER NOT NULL" gorm:"not null"`

	LeftSequence  string `db:"left_sequence" ddl:"TEXT" gorm:"type:varchar(100)"`
	RightSequence string `db:"right_sequence" ddl:"TEXT" gorm:"type:varchar(100)"`

	LeftTm  float64 `db:"left_tm" ddl:"REAL" gorm:"type:double precision"`
	RightTm float64 `db:"right_tm" ddl:"REAL" gorm:"type:double precision"`
	LeftGC  float64 `db:"left_gc" ddl:"REAL" gorm:"type:double precision"`
	RightGC float64 `db:"right_gc" ddl:"REAL" gorm:"type:double precision"`

	ProductSize int `db:"product_size" ddl:"INTEGER" gorm:"type:integer"`

	QualityScore float64 `db:"quality_score" ddl:"REAL NOT NULL" gorm:"type:double precision;not null"`
	Grade        string  `db:"grade" ddl:"TEXT NOT NULL" gorm:"type:varchar(2);not null"`
	DimerScore   float64 `db:"dimer_score" ddl:"REAL" gorm:"type:double precision"`
	RankInGroup  int     `db:"rank_in_group" ddl:"INTEGER NOT NULL" gorm:"not null"`
	GlobalRank   int     `db:"global_rank" ddl:"INTEGER NOT NULL" gorm:"not null"`
}
