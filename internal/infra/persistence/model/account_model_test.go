package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestHistoryRecordModel_CascadesWithAccount(t *testing.T) {
	s, err := schema.Parse(&HistoryRecordModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	rel, ok := s.Relationships.Relations["Account"]
	require.True(t, ok, "history records must declare their owning account")
	assert.Equal(t, schema.BelongsTo, rel.Type)

	require.Len(t, rel.References, 1)
	assert.Equal(t, "AccountID", rel.References[0].ForeignKey.Name)
	assert.Equal(t, "ID", rel.References[0].PrimaryKey.Name)

	// Deleting an account must take its history records with it.
	constraint := rel.ParseConstraint()
	require.NotNil(t, constraint, "foreign key constraint missing from migration schema")
	assert.Equal(t, "CASCADE", constraint.OnDelete)
}

func TestAccountModel_UsernameUnique(t *testing.T) {
	s, err := schema.Parse(&AccountModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := s.LookUpField("Username")
	require.NotNil(t, field)
	assert.True(t, field.Unique, "duplicate registration must fail at the database")
	assert.True(t, field.NotNull)
}
