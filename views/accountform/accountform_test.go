package accountform

import (
	"testing"

	"nifty-wallet-tui/store"

	"github.com/stretchr/testify/assert"
)

const addr = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"

func TestValidateAddress(t *testing.T) {
	v := validateAddress([]string{"0xd8da6bf26964af9d7eed9e03e53415d37aa96045"})
	assert.NoError(t, v(addr))
	assert.Error(t, v("0x123"))
	assert.EqualError(t, v("0xD8DA6BF26964AF9D7EED9E03E53415D37AA96045"), "account already added")
	assert.EqualError(t, v("d8da6bf26964af9d7eed9e03e53415d37aa96045"), "account already added")
}

func TestCreateProposesName(t *testing.T) {
	f := NewCreate(nil, 2)
	tempAddress = addr
	a := f.Action().(store.AddAccountAction)
	assert.Equal(t, store.KeyringTypeHD, a.KeyringType)
	assert.Equal(t, "Account 3", a.Name)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", a.Address)
}

func TestImportFallsBackToShortAddress(t *testing.T) {
	f := NewImport(nil)
	tempAddress = addr
	a := f.Action().(store.AddAccountAction)
	assert.Equal(t, store.KeyringTypeSimple, a.KeyringType)
	assert.Equal(t, "0x5aAe…eAed", a.Name)
}
