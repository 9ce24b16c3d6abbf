package objectstore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/credstore/internal/common"
	"github.com/dmitrijs2005/credstore/internal/logging"
	"github.com/dmitrijs2005/credstore/internal/store"
	"github.com/dmitrijs2005/credstore/internal/users"
)

var _ store.Backend = (*Backend)(nil)

// fakeS3 keeps objects in a map keyed by bucket/key.
type fakeS3 struct {
	objects map[string]string
	getErr  error
	putErr  error
	lastPut *s3.PutObjectInput
}

func newFakeS3() *fakeS3 { return &fakeS3{objects: map[string]string{}} }

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	body, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.lastPut = in
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = string(data)
	return &s3.PutObjectOutput{}, nil
}

func TestLoad_MissingObjectIsEmpty(t *testing.T) {
	b := New(newFakeS3(), "vault", "users.txt", logging.Discard())

	got, err := b.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestLoad_OtherErrorsFail(t *testing.T) {
	f := newFakeS3()
	f.getErr = errors.New("access denied")
	b := New(f, "vault", "users.txt", logging.Discard())

	_, err := b.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFakeS3()
	b := New(f, "vault", "users.txt", logging.Discard())

	in := []users.User{{Username: "alice", Password: "a,b,c"}, {Username: "bob", Password: "pw"}}
	require.NoError(t, b.Save(ctx, in))

	assert.Equal(t, "alice,a,b,c\nbob,pw\n", f.objects["vault/users.txt"])
	assert.Equal(t, int64(len("alice,a,b,c\nbob,pw\n")), aws.ToInt64(f.lastPut.ContentLength))
	assert.Equal(t, contentType, aws.ToString(f.lastPut.ContentType))

	out, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_SkipsMalformedLines(t *testing.T) {
	f := newFakeS3()
	f.objects["vault/users.txt"] = "alice,pw\nnocomma\nbob,x\n"
	b := New(f, "vault", "users.txt", logging.Discard())

	got, err := b.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []users.User{{Username: "alice", Password: "pw"}, {Username: "bob", Password: "x"}}, got)
}

func TestSave_PutError(t *testing.T) {
	f := newFakeS3()
	f.putErr = errors.New("bucket gone")
	b := New(f, "vault", "users.txt", logging.Discard())

	err := b.Save(context.Background(), []users.User{{Username: "a", Password: "1"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, f.putErr)
}

func TestSave_UnencodableRecordNeverUploads(t *testing.T) {
	f := newFakeS3()
	b := New(f, "vault", "users.txt", logging.Discard())

	err := b.Save(context.Background(), []users.User{{Username: "a,b", Password: "pw"}})
	require.ErrorIs(t, err, common.ErrorMalformedRecord)
	assert.Nil(t, f.lastPut)
	assert.Empty(t, f.objects)
}

func TestOpen_ConfiguresClient(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() { loadDefaultAWSConfig, newS3ClientFromConfig = origLoad, origNew })

	var gotRegion string
	var credsSet bool
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		gotRegion = lo.Region
		credsSet = lo.Credentials != nil
		return aws.Config{}, nil
	}

	fake := newFakeS3()
	var gotOpts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) ObjectAPI {
		for _, fn := range optFns {
			fn(&gotOpts)
		}
		return fake
	}

	b, err := Open(context.Background(), Options{
		Bucket:       "vault",
		Key:          "users.txt",
		Region:       "eu-west-1",
		BaseEndpoint: "http://127.0.0.1:9000/",
		AccessKey:    "admin",
		SecretKey:    "secret",
	}, logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", gotRegion)
	assert.True(t, credsSet)
	assert.Equal(t, "http://127.0.0.1:9000/", aws.ToString(gotOpts.BaseEndpoint))
	assert.True(t, gotOpts.UsePathStyle)

	require.NoError(t, b.Save(context.Background(), []users.User{{Username: "a", Password: "1"}}))
	assert.Contains(t, fake.objects, "vault/users.txt")
}

func TestOpen_ConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })
	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := Open(context.Background(), Options{Bucket: "b", Key: "k"}, logging.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load-fail")
}
