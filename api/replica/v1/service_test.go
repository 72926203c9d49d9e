package replicav1_test

import (
	"context"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	replicav1 "go.trai.ch/replica/api/replica/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/reflect/protoreflect"
)

type workspaceServer struct {
	replicav1.UnimplementedWorkspaceServiceServer

	attached string
}

func (s *workspaceServer) Attach(_ context.Context, in *replicav1.AttachRequest) (*replicav1.AttachResponse, error) {
	s.attached = in.GetEndpoint()
	return &replicav1.AttachResponse{}, nil
}

func (s *workspaceServer) SynchronizePrimary(
	context.Context, *replicav1.SynchronizePrimaryRequest,
) (*replicav1.SynchronizePrimaryResponse, error) {
	return &replicav1.SynchronizePrimaryResponse{}, nil
}

func (s *workspaceServer) Describe(_ context.Context, in *replicav1.DescribeRequest) (*replicav1.DescribeResponse, error) {
	return &replicav1.DescribeResponse{
		Checksum: in.GetRoot(),
		Solution: "sln",
		Projects: []*replicav1.ProjectSummary{{Id: "a", Refs: []string{"b"}}},
	}, nil
}

func (s *workspaceServer) Ping(context.Context, *replicav1.PingRequest) (*replicav1.PingResponse, error) {
	return &replicav1.PingResponse{IdleRemainingSeconds: 42}, nil
}

func (s *workspaceServer) Status(context.Context, *replicav1.StatusRequest) (*replicav1.StatusResponse, error) {
	return &replicav1.StatusResponse{Running: true, Primary: 7}, nil
}

func (s *workspaceServer) Shutdown(context.Context, *replicav1.ShutdownRequest) (*replicav1.ShutdownResponse, error) {
	return &replicav1.ShutdownResponse{Success: true}, nil
}

type assetServer struct {
	replicav1.UnimplementedAssetServiceServer
}

func (assetServer) FetchAssets(req *replicav1.FetchAssetsRequest, stream grpc.ServerStreamingServer[replicav1.Asset]) error {
	for _, c := range req.GetChecksums() {
		if err := stream.Send(&replicav1.Asset{Checksum: c, Kind: 3, Data: []byte(req.GetProjectId())}); err != nil {
			return err
		}
	}
	return nil
}

func dial(t *testing.T, register func(*grpc.Server)) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestWorkspaceService_RoundTrip(t *testing.T) {
	impl := &workspaceServer{}
	conn := dial(t, func(s *grpc.Server) { replicav1.RegisterWorkspaceServiceServer(s, impl) })
	client := replicav1.NewWorkspaceServiceClient(conn)
	ctx := context.Background()

	_, err := client.Attach(ctx, &replicav1.AttachRequest{Endpoint: "/tmp/assets.sock"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/assets.sock", impl.attached)

	desc, err := client.Describe(ctx, &replicav1.DescribeRequest{Root: 0xabc})
	require.NoError(t, err)
	assert.Equal(t, uint64(0xabc), desc.Checksum)
	assert.Equal(t, []string{"b"}, desc.GetProjects()[0].GetRefs())

	ping, err := client.Ping(ctx, &replicav1.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(42), ping.IdleRemainingSeconds)

	st, err := client.Status(ctx, &replicav1.StatusRequest{})
	require.NoError(t, err)
	assert.True(t, st.GetRunning())
	assert.Equal(t, uint64(7), st.GetPrimary())

	shut, err := client.Shutdown(ctx, &replicav1.ShutdownRequest{Graceful: true})
	require.NoError(t, err)
	assert.True(t, shut.Success)
}

func TestAssetService_Stream(t *testing.T) {
	conn := dial(t, func(s *grpc.Server) { replicav1.RegisterAssetServiceServer(s, assetServer{}) })
	client := replicav1.NewAssetServiceClient(conn)

	stream, err := client.FetchAssets(context.Background(), &replicav1.FetchAssetsRequest{
		ProjectId: "p",
		Checksums: []uint64{1, 2, 3},
	})
	require.NoError(t, err)

	var got []uint64
	for {
		m, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, []byte("p"), m.Data)
		got = append(got, m.Checksum)
	}
	assert.Equal(t, []uint64{1, 2, 3}, got)
}

func TestDescriptor_Services(t *testing.T) {
	services := replicav1.File_replica_v1_replica_proto.Services()
	require.Equal(t, 2, services.Len())

	fetch := services.ByName("AssetService").Methods().ByName("FetchAssets")
	require.NotNil(t, fetch)
	assert.True(t, fetch.IsStreamingServer())
	assert.False(t, fetch.IsStreamingClient())

	projects := (&replicav1.DescribeResponse{}).ProtoReflect().Descriptor().Fields().ByName("projects")
	require.NotNil(t, projects)
	assert.Equal(t, protoreflect.FullName("replica.v1.ProjectSummary"), projects.Message().FullName())
}

func TestWorkspaceService_UnimplementedMethod(t *testing.T) {
	conn := dial(t, func(s *grpc.Server) {
		replicav1.RegisterWorkspaceServiceServer(s, replicav1.UnimplementedWorkspaceServiceServer{})
	})
	client := replicav1.NewWorkspaceServiceClient(conn)

	_, err := client.Ping(context.Background(), &replicav1.PingRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
