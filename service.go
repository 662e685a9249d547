package outboard

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"sync"
)

// KernelFunc is a native kernel callable from the embedding runtime. It
// receives the decoded arguments from the request's data field and returns
// a value to serialize back, or an error to report to the caller.
type KernelFunc func(args []interface{}) (interface{}, error)

// KernelService serves native kernels to an embedding dynamic runtime over
// a Transport. Requests are maps of the form
//
//	{"command": <kernel name>, "data": [<args>...], "request_id": <id>}
//
// and replies carry either {"result": ..., "request_id": ...} or
// {"error": <message>, "request_id": ...}. Each request is dispatched on
// its own goroutine so a slow kernel never blocks the read loop; replies
// are serialized through an internal mutex.
//
// The built-in "__get_kernels__" command returns the registered kernel
// names, and "exit" stops the serve loop after acknowledging.
//
// There is no process-wide registry: every service instance owns its kernel
// table, and the kernels themselves stay plain functions.
type KernelService struct {
	serializer Serializer
	transport  Transport

	// mutex guards kernels and running; writeMutex serializes reply
	// writes on the transport. They are distinct so a reply blocked on a
	// slow peer never stalls the read loop.
	mutex      sync.Mutex
	writeMutex sync.Mutex
	kernels    map[string]KernelFunc
	running    bool
	handling   sync.WaitGroup
}

// NewKernelService creates a service speaking MessagePack over the given
// transport. Register kernels before calling Serve.
func NewKernelService(transport Transport) *KernelService {
	return &KernelService{
		serializer: MsgpackSerializer{},
		transport:  transport,
		kernels:    make(map[string]KernelFunc),
	}
}

// RegisterKernel binds a kernel function to a wire name. Registering the
// same name again replaces the previous kernel.
func (ks *KernelService) RegisterKernel(name string, kernel KernelFunc) {
	ks.mutex.Lock()
	defer ks.mutex.Unlock()
	ks.kernels[name] = kernel
}

// KernelNames returns the registered kernel names in sorted order.
func (ks *KernelService) KernelNames() []string {
	ks.mutex.Lock()
	defer ks.mutex.Unlock()
	names := make([]string, 0, len(ks.kernels))
	for name := range ks.kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Serve reads and dispatches requests until the transport closes, an
// unrecoverable read error occurs, or an "exit" command arrives. It blocks
// the calling goroutine and waits for in-flight kernels before returning.
func (ks *KernelService) Serve() error {
	ks.mutex.Lock()
	if ks.running {
		ks.mutex.Unlock()
		return errors.New("kernel service: already serving")
	}
	ks.running = true
	ks.mutex.Unlock()

	defer func() {
		ks.mutex.Lock()
		ks.running = false
		ks.mutex.Unlock()
		ks.handling.Wait()
	}()

	for {
		ks.mutex.Lock()
		running := ks.running
		ks.mutex.Unlock()
		if !running {
			return nil
		}

		frame, err := ks.transport.Receive()
		if err != nil {
			if err == io.EOF || errors.Is(err, io.ErrClosedPipe) {
				return nil
			}
			ks.mutex.Lock()
			running = ks.running
			ks.mutex.Unlock()
			if !running {
				// Close tore down the transport under us
				return nil
			}
			return fmt.Errorf("kernel service: read: %w", err)
		}

		var msg map[string]interface{}
		if err := ks.serializer.Unmarshal(frame, &msg); err != nil {
			log.Printf("kernel service: decoding message: %v", err)
			continue
		}

		command, _ := msg["command"].(string)
		requestID, hasID := msg["request_id"].(string)
		if !hasID {
			log.Printf("kernel service: message without request id: %v", msg)
			continue
		}

		if command == "exit" {
			ks.reply(requestID, "ok", nil)
			return nil
		}

		ks.handling.Add(1)
		go func() {
			defer ks.handling.Done()
			ks.dispatch(command, msg["data"], requestID)
		}()
	}
}

// dispatch runs one request and sends the reply.
func (ks *KernelService) dispatch(command string, data interface{}, requestID string) {
	if command == "__get_kernels__" {
		ks.reply(requestID, ks.KernelNames(), nil)
		return
	}

	ks.mutex.Lock()
	kernel, ok := ks.kernels[command]
	ks.mutex.Unlock()
	if !ok {
		ks.reply(requestID, nil, fmt.Errorf("unknown kernel: %s", command))
		return
	}

	args, err := argList(data)
	if err != nil {
		ks.reply(requestID, nil, fmt.Errorf("%s: %w", command, err))
		return
	}

	result, err := kernel(args)
	ks.reply(requestID, result, err)
}

// reply sends a response frame for requestID carrying either the result or
// the error message.
func (ks *KernelService) reply(requestID string, result interface{}, kernelErr error) {
	response := map[string]interface{}{"request_id": requestID}
	if kernelErr != nil {
		response["error"] = kernelErr.Error()
	} else {
		response["result"] = result
	}

	frame, err := ks.serializer.Marshal(response)
	if err != nil {
		log.Printf("kernel service: encoding response: %v", err)
		return
	}

	ks.writeMutex.Lock()
	err = ks.transport.Send(frame)
	ks.writeMutex.Unlock()
	if err != nil {
		log.Printf("kernel service: sending response: %v", err)
	}
}

// Close stops the serve loop by closing the transport and waits for
// in-flight kernels to finish. It is safe to call more than once.
func (ks *KernelService) Close() error {
	ks.mutex.Lock()
	ks.running = false
	ks.mutex.Unlock()

	err := ks.transport.Close()
	ks.handling.Wait()
	return err
}

// argList normalizes a request's data field into an argument slice.
// A nil data field means no arguments.
func argList(data interface{}) ([]interface{}, error) {
	if data == nil {
		return nil, nil
	}
	args, ok := data.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected argument array, got %T", data)
	}
	return args, nil
}
