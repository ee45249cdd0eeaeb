package commands_test

import (
	"testing"

	"supplymitra/internal/core/application/usecases/commands"
	"supplymitra/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLines() []commands.OrderLine {
	return []commands.OrderLine{
		{MaterialID: kernel.NewUUID(), Quantity: 10},
		{MaterialID: kernel.NewUUID(), Quantity: 5},
	}
}

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	lines := validLines()

	cmd, err := commands.NewPlaceOrderCommand(orderID, vendorID, supplierID,
		kernel.NewUUID(), kernel.NewUUID(), lines, nil)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, vendorID, cmd.VendorID())
	assert.Equal(t, supplierID, cmd.SupplierID())
	assert.Equal(t, lines, cmd.Lines())
	assert.Nil(t, cmd.ExpectedDelivery())
}

func TestNewPlaceOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(), validLines(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPlaceOrderCommand_NoLines(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lineItems")
}

func TestNewPlaceOrderCommand_ZeroQuantity(t *testing.T) {
	lines := []commands.OrderLine{{MaterialID: kernel.NewUUID(), Quantity: 0}}
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(), lines, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")
}

func TestNewPlaceOrderCommand_LineWithoutMaterial(t *testing.T) {
	lines := []commands.OrderLine{{Quantity: 3}}
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(), lines, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "materialId")
}

func TestPlaceOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.PlaceOrderCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
