package services

import (
	"context"
	"testing"

	"dentalflow-backend/auth"
	"dentalflow-backend/dtos"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_SendUsesPrincipal(t *testing.T) {
	svc := NewMessageService(newFakeMessages(), newFakeContacts())
	p := &auth.Principal{UserID: 1, Username: "drsilva"}

	out, err := svc.Send(context.Background(), p, dtos.Message{ReceiverID: "lab", Content: "Crown ready?", CaseID: "12"})
	require.NoError(t, err)
	assert.Equal(t, "drsilva", out.SenderID)
	assert.Equal(t, "1", out.ID)
	assert.False(t, out.IsRead)

	same, err := svc.Send(context.Background(), p, dtos.Message{SenderID: "drsilva", ReceiverID: "lab", Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "drsilva", same.SenderID)
}

func TestMessageService_SendRejectsForeignSender(t *testing.T) {
	msgs := newFakeMessages()
	svc := NewMessageService(msgs, newFakeContacts())
	p := &auth.Principal{UserID: 1, Username: "drsilva"}

	_, err := svc.Send(context.Background(), p, dtos.Message{SenderID: "front-desk", ReceiverID: "lab", Content: "hi"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "senderId", verr.Field)
	assert.Empty(t, msgs.all())

	anon, err := svc.Send(context.Background(), nil, dtos.Message{SenderID: "front-desk", ReceiverID: "lab", Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "front-desk", anon.SenderID)
}

func TestMessageService_SendRequiresSender(t *testing.T) {
	svc := NewMessageService(newFakeMessages(), newFakeContacts())

	_, err := svc.Send(context.Background(), nil, dtos.Message{ReceiverID: "lab", Content: "hello"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMessageService_ThreadsAndInbox(t *testing.T) {
	svc := NewMessageService(newFakeMessages(), newFakeContacts())
	ctx := context.Background()
	ana := &auth.Principal{Username: "drsilva"}
	lab := &auth.Principal{Username: "lab"}

	_, err := svc.Send(ctx, ana, dtos.Message{ReceiverID: "lab", Content: "one", CaseID: "12"})
	require.NoError(t, err)
	_, err = svc.Send(ctx, lab, dtos.Message{ReceiverID: "drsilva", Content: "two", CaseID: "12"})
	require.NoError(t, err)
	_, err = svc.Send(ctx, ana, dtos.Message{ReceiverID: "lab", Content: "three", CaseID: "13"})
	require.NoError(t, err)

	thread, err := svc.ByCase(ctx, "12")
	require.NoError(t, err)
	assert.Len(t, thread, 2)

	inbox, err := svc.Inbox(ctx, lab)
	require.NoError(t, err)
	assert.Len(t, inbox, 2)

	_, err = svc.Inbox(ctx, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMessageService_MarkRead(t *testing.T) {
	svc := NewMessageService(newFakeMessages(), newFakeContacts())
	ctx := context.Background()

	sent, err := svc.Send(ctx, &auth.Principal{Username: "a"}, dtos.Message{ReceiverID: "b", Content: "x"})
	require.NoError(t, err)

	out, err := svc.MarkRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, sent.ID, out.ID)
	assert.True(t, out.IsRead)

	_, err = svc.MarkRead(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMessageService_CreateContactDerivesInitials(t *testing.T) {
	svc := NewMessageService(newFakeMessages(), newFakeContacts())
	ctx := context.Background()

	out, err := svc.CreateContact(ctx, dtos.Contact{Name: "Ana Maria Silva", Role: "Dentist"})
	require.NoError(t, err)
	assert.Equal(t, "AM", out.Initials)

	all, err := svc.Contacts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
