package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"peche-payments-be/internal/dto"
)

func TestSubscribe(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewSubscriberService(factory, nopLogger{})
	ctx := context.Background()

	res, err := svc.Subscribe(ctx, &dto.SubscribeRequest{Email: "reader@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, "reader@example.com", res.Email)
	assert.Len(t, factory.uow.subscriberRepo.subscribers, 1)
}

func TestSubscribeRunsInTransaction(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewSubscriberService(factory, nopLogger{})

	_, err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "reader@example.com"})
	assert.NoError(t, err)

	assert.Equal(t, 1, factory.uow.begins, "check-then-insert runs inside one transaction")
	assert.Equal(t, 1, factory.uow.commits)
	assert.Equal(t, 0, factory.uow.rollbacks)
}

func TestSubscribeRollsBackOnDuplicate(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewSubscriberService(factory, nopLogger{})
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, &dto.SubscribeRequest{Email: "reader@example.com"})
	assert.NoError(t, err)

	_, err = svc.Subscribe(ctx, &dto.SubscribeRequest{Email: "reader@example.com"})
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
	assert.Equal(t, 1, factory.uow.rollbacks)
	assert.Equal(t, 1, factory.uow.commits, "only the first signup commits")
}

func TestSubscribeRollsBackOnInsertFailure(t *testing.T) {
	factory := newFakeUowFactory()
	factory.uow.subscriberRepo.createErr = errBoom
	svc := NewSubscriberService(factory, nopLogger{})

	_, err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "reader@example.com"})
	assert.Error(t, err)
	assert.Equal(t, 1, factory.uow.rollbacks)
	assert.Equal(t, 0, factory.uow.commits)
}

func TestSubscribeRejectsDuplicate(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewSubscriberService(factory, nopLogger{})
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, &dto.SubscribeRequest{Email: "reader@example.com"})
	assert.NoError(t, err)

	_, err = svc.Subscribe(ctx, &dto.SubscribeRequest{Email: "reader@example.com"})
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
	assert.Len(t, factory.uow.subscriberRepo.subscribers, 1)
}

func TestGetSubscribers(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewSubscriberService(factory, nopLogger{})
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := svc.Subscribe(ctx, &dto.SubscribeRequest{Email: email})
		assert.NoError(t, err)
	}

	res, err := svc.GetSubscribers(ctx)
	assert.NoError(t, err)
	assert.Len(t, res, 2)
}
