package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const journalsYAML = `journals:
  - name: Precargadas Caja
    card_number: "0000123456"
    currency: ARS
    journal: CAJA
    account:
      code: "2.1.01"
      party_required: true
    group_moves_by_account: true
  - name: Precargadas Sucursal
    card_number: "0000999999"
    journal: SUC
    account:
      code: "2.1.02"
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestJournalStore(t *testing.T) {
	store := NewJournalStore(writeFixture(t, "journals.yaml", journalsYAML))

	journals, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, journals, 2)

	journal, err := store.ByCardNumber("0000123456")
	require.NoError(t, err)
	require.NotNil(t, journal)
	assert.Equal(t, "Precargadas Caja", journal.Name)
	assert.Equal(t, "2.1.01", journal.Account.Code)
	assert.True(t, journal.Account.PartyRequired)
	assert.True(t, journal.GroupMovesByAccount)

	journal, err = store.ByCardNumber("no-such-card")
	require.NoError(t, err)
	assert.Nil(t, journal)

	journal, err = store.ByName("Precargadas Sucursal")
	require.NoError(t, err)
	require.NotNil(t, journal)
	assert.Equal(t, "SUC", journal.Journal)
}

func TestJournalStore_MissingFile(t *testing.T) {
	store := NewJournalStore(filepath.Join(t.TempDir(), "absent.yaml"))

	journals, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, journals)
}

const identifiersYAML = `identifiers:
  - type: ar_tarjeta_precargada
    code: "0000123456"
    party:
      code: P-001
      name: Cooperativa Ejemplo
      active: true
  - type: ar_tarjeta_precargada
    code: "0000777777"
    party:
      code: P-002
      active: true
  - type: ar_tarjeta_precargada
    code: "0000777777"
    party:
      code: P-003
      active: true
`

func TestIdentifierStore_FindByIdentifier(t *testing.T) {
	store := NewIdentifierStore(writeFixture(t, "identifiers.yaml", identifiersYAML))

	party, err := store.FindByIdentifier("ar_tarjeta_precargada", "0000123456")
	require.NoError(t, err)
	require.NotNil(t, party)
	assert.Equal(t, "P-001", party.Code)

	// More than one match resolves to no party.
	party, err = store.FindByIdentifier("ar_tarjeta_precargada", "0000777777")
	require.NoError(t, err)
	assert.Nil(t, party)

	party, err = store.FindByIdentifier("ar_tarjeta_precargada", "0000000000")
	require.NoError(t, err)
	assert.Nil(t, party)

	party, err = store.FindByIdentifier("ar_cuit", "0000123456")
	require.NoError(t, err)
	assert.Nil(t, party)
}
