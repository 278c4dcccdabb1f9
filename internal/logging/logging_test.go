package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging()
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func TestSetupLoggingWithLevel(t *testing.T) {
	logger, err := SetupLoggingWithLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.Level)

	_, err = SetupLoggingWithLevel("loud")
	assert.Error(t, err)
}

func TestLogData_FieldsAndTimings(t *testing.T) {
	logger, buf := bufferedLogger()
	logData := NewLogData(logger)

	logData.AddData("accountID", "acc-1")
	stop := logData.AddTiming("saveMs")
	stop()
	logData.Log().Info("done")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["loglevel"])
	assert.Equal(t, "acc-1", line["accountID"])
	assert.Contains(t, line, "saveMs")
}

func TestGetLogData_AbsentOutsideRequest(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))
}

func TestLoggingWrapper_PutsLogDataInContext(t *testing.T) {
	logger, buf := bufferedLogger()
	var fromCtx *LogData
	handler := LoggingWrapper("Ping", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		fromCtx = GetLogData(req.Context())
		assert.Same(t, logData, fromCtx)
		w.WriteHeader(http.StatusNoContent)
		return nil
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotNil(t, fromCtx)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, buf.String(), "Handler.Ping.Complete")
}

type pingOutput struct {
	Body struct {
		HasLogData bool `json:"hasLogData"`
	}
}

func TestHumaMiddleware(t *testing.T) {
	logger, buf := bufferedLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(HumaMiddleware(logger))
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		logData := GetLogData(ctx)
		out.Body.HasLogData = logData != nil
		if logData != nil {
			logData.AddData("pinged", true)
		}
		return out, nil
	})

	resp := api.Get("/ping")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"hasLogData":true`)
	assert.Contains(t, buf.String(), "Handler.ping.Complete")
	assert.Contains(t, buf.String(), `"pinged":true`)
}
