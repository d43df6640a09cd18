package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/storage/mocks"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestParseURI(t *testing.T) {
	tests := []struct {
		name       string
		uri        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{name: "simple", uri: "s3://docs/A.pdf", wantBucket: "docs", wantKey: "A.pdf"},
		{name: "nested key", uri: "s3://docs/team/2024/A.pdf", wantBucket: "docs", wantKey: "team/2024/A.pdf"},
		{name: "surrounding space", uri: "  s3://docs/A.pdf ", wantBucket: "docs", wantKey: "A.pdf"},
		{name: "wrong scheme", uri: "https://docs/A.pdf", wantErr: true},
		{name: "bucket only", uri: "s3://docs/", wantErr: true},
		{name: "no bucket", uri: "s3:///A.pdf", wantErr: true},
		{name: "bare prefix", uri: "s3://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := ParseURI(tt.uri)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.uri)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if bucket != tt.wantBucket || key != tt.wantKey {
				t.Errorf("expected %s/%s, got %s/%s", tt.wantBucket, tt.wantKey, bucket, key)
			}
		})
	}
}

func TestVerify_Exists(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockObjectHeader(ctrl)

	client.EXPECT().
		HeadObject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
			if *in.Bucket != "docs" || *in.Key != "A.pdf" {
				t.Errorf("unexpected input %s/%s", *in.Bucket, *in.Key)
			}
			return &s3.HeadObjectOutput{}, nil
		})

	v := NewVerifier(client, newTestLogger())
	if !v.Verify(context.Background(), "s3://docs/A.pdf") {
		t.Error("expected object to exist")
	}
}

func TestVerify_Missing(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "not found", err: &types.NotFound{}},
		{name: "no such key", err: &types.NoSuchKey{}},
		{name: "access denied", err: errors.New("forbidden")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockObjectHeader(ctrl)
			client.EXPECT().HeadObject(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			v := NewVerifier(client, newTestLogger())
			if v.Verify(context.Background(), "s3://docs/A.pdf") {
				t.Error("expected object to be reported missing")
			}
		})
	}
}

func TestVerify_InvalidURISkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockObjectHeader(ctrl)

	v := NewVerifier(client, newTestLogger())
	if v.Verify(context.Background(), "s3://A.pdf") {
		t.Error("expected invalid uri to be reported missing")
	}
}
