// FILE: example/gnet/main.go
package main

import (
	logf "github.com/Falcom4000/logF"
	"github.com/Falcom4000/logF/compat"
	"github.com/panjf2000/gnet/v2"
)

// echoServer is a minimal gnet event handler used to exercise the logger
// adapter under a real event loop.
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	logger, err := logf.NewBuilder().
		Directory("/var/log/gnet").
		Capacity(2048).
		FileSizeBytes(4 << 20).
		MinLevel(logf.LevelInfo).
		Build()
	if err != nil {
		panic(err)
	}
	logger.Start()
	defer logger.Stop()

	gnetAdapter := compat.NewGnetLogger(logger)

	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
