// Package mocks provides testify mocks shared by the service and API tests.
//
// Every mock embeds mock.Mock. Store mocks return themselves from WithTx, so
// transactional code paths run against the same expectations while a
// go-sqlmock database plays the transaction:
//
//	animals := new(mocks.MockAnimalStore)
//	animals.On("GetByName", mock.Anything, "Leon").Return(nil, store.ErrAnimalNotFound)
//	animals.On("Create", mock.Anything, mock.AnythingOfType("*domain.Animal")).Return(nil)
package mocks
