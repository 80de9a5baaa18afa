package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Messages_Keep_Append_Order(t *testing.T) {
	req := require.New(t)
	log := NewMessageService()

	log.Add("first")
	log.Add("second")
	log.Add("third")

	req.Equal([]string{"first", "second", "third"}, log.Messages())
}

func Test_Clear_Resets_The_Log(t *testing.T) {
	req := require.New(t)
	log := NewMessageService()

	log.Add("about to vanish")
	log.Clear()

	req.Empty(log.Messages())
}

func Test_Messages_Returns_A_Snapshot(t *testing.T) {
	req := require.New(t)
	log := NewMessageService()
	log.Add("stable")

	snapshot := log.Messages()
	log.Add("later")

	req.Equal([]string{"stable"}, snapshot)
}

func Test_Concurrent_Appends_Are_All_Kept(t *testing.T) {
	req := require.New(t)
	log := NewMessageService()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			log.Add(fmt.Sprintf("message %d", i))
		}(i)
	}
	wg.Wait()

	req.Len(log.Messages(), 50)
}
