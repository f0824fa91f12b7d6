package pkg

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	petname "github.com/dustinkirkland/golang-petname"
)

// InitLog sends the standard logger to dest. The terminal belongs to the UI,
// so an empty dest discards log output altogether.
func InitLog(dest, prefix string) error {
	log.SetPrefix(prefix)

	if dest == "" {
		log.SetOutput(ioutil.Discard)
		return nil
	}

	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	log.SetOutput(f)

	return nil
}

// SessionName returns a short random name such as "lucky-otter" to tell
// sessions apart in the log.
func SessionName() string {
	return petname.Generate(2, "-")
}
