package api

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestServiceDescriptor(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName("scriptoria.Scriptoria")
	require.NoError(t, err)
	assert.Equal(t, Scriptoria_ServiceDesc.ServiceName, string(d.FullName()))

	var names []string
	for _, m := range Scriptoria_ServiceDesc.Methods {
		names = append(names, m.MethodName)
	}
	assert.Equal(t, []string{"SignUp", "Login", "Logout", "Generate", "History", "Get", "Export"}, names)
}

func TestHistoryResponse_WireRoundTrip(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	in := &HistoryResponse{Records: []*Record{
		{Id: 2, Title: "Moon", Language: "Hindi", CreatedAt: timestamppb.New(at)},
		{Id: 1, Title: "Sea", Language: "English", CreatedAt: timestamppb.New(at.Add(-time.Hour))},
	}}

	b, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &HistoryResponse{}
	require.NoError(t, proto.Unmarshal(b, out))

	if diff := cmp.Diff(in, out, protocmp.Transform()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, at.Equal(out.GetRecords()[0].GetCreatedAt().AsTime()))
	assert.Empty(t, out.GetRecords()[0].GetContent())
}
