package httpapi

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/Leganyst/session-scheduler/internal/scheduling"
	"github.com/Leganyst/session-scheduler/internal/service"
)

var kindStatus = map[string]int{
	scheduling.KindValidation:       http.StatusBadRequest,
	scheduling.KindNotFound:         http.StatusNotFound,
	scheduling.KindTokenNotFound:    http.StatusNotFound,
	scheduling.KindTokenExpired:     http.StatusGone,
	scheduling.KindTokenAlreadyUsed: http.StatusGone,
	scheduling.KindUnavailable:      http.StatusServiceUnavailable,
	scheduling.KindUnexpected:       http.StatusInternalServerError,
}

// httpStatus: бизнес-отказы без отдельной строки в таблице дают 409.
func httpStatus(err error) int {
	reason := service.ErrorReason(err)
	if code, ok := kindStatus[reason]; ok {
		return code
	}
	if reason != "" {
		return http.StatusConflict
	}
	switch status.Code(err) {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	body := gin.H{"error": status.Convert(err).Message()}
	if reason := service.ErrorReason(err); reason != "" {
		body["kind"] = reason
	}
	if fields := service.FieldViolations(err); len(fields) > 0 {
		body["fields"] = fields
	}
	c.JSON(httpStatus(err), body)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": scheduling.KindValidation})
}

var (
	marshalOpts   = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}
	unmarshalOpts = protojson.UnmarshalOptions{DiscardUnknown: true}
)

// writeProto отдаёт ответ в protojson с именами полей как в .proto.
func writeProto(c *gin.Context, code int, msg proto.Message) {
	body, err := marshalOpts.Marshal(msg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encode response", "kind": scheduling.KindUnexpected})
		return
	}
	c.Data(code, "application/json; charset=utf-8", body)
}

// bindProto разбирает тело запроса в сообщение calendar.v1.
func bindProto(c *gin.Context, msg proto.Message) error {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return unmarshalOpts.Unmarshal(body, msg)
}
