// Command ethutil is an interactive shell over the ethereum-util packages.
//
// Without arguments it starts a prompt. With arguments it runs them as a
// single command and exits:
//
//	ethutil sha3 hello world
//	ethutil sign alice 0xdaf5a779ae972f972197303d7b574746c7ef83eadac0f2791ad23db92e4c8e53
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/c-bata/go-prompt"
	"golang.org/x/term"

	"github.com/blockchainethdev/ethereum-util/cmd/ethutil/storage"
	"github.com/blockchainethdev/ethereum-util/pkg/log"
)

func main() {
	conf, err := LoadConfig(os.Getenv(configDirPathEnv))
	if err != nil {
		fmt.Printf("Failed to load configuration: %s\n", err.Error())
		os.Exit(1)
	}

	logger := log.NewZapLogger(conf.Log).WithName("ethutil")
	conf.LogLoad(logger)

	store, err := storage.NewStorage(conf.KeystorePath)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer store.Close()

	operator, err := NewOperator(conf, store, logger, os.Stdout)
	if err != nil {
		logger.Fatal("failed to create operator", "error", err)
	}

	if len(os.Args) > 1 {
		operator.Execute(strings.Join(os.Args[1:], " "))
		return
	}

	initialState, _ := term.GetState(int(os.Stdin.Fd()))
	handleExit := func() {
		if initialState != nil {
			term.Restore(int(os.Stdin.Fd()), initialState)
		}
		exec.Command("stty", "sane").Run()
	}

	options := append(getStyleOptions(),
		prompt.OptionPrefix(">>> "),
		prompt.OptionAddKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn: func(buf *prompt.Buffer) {
				fmt.Println("Exiting ethutil.")
				handleExit()
				os.Exit(0)
			},
		}),
		prompt.OptionAddKeyBind(prompt.KeyBind{
			Key: prompt.ControlD,
			Fn:  func(buf *prompt.Buffer) {},
		}),
	)
	p := prompt.New(operator.Execute, operator.Complete, options...)

	promptExitCh := make(chan struct{})
	go func() {
		p.Run()
		close(promptExitCh)
	}()

	select {
	case <-operator.Wait():
	case <-promptExitCh:
	}
	handleExit()
	fmt.Println("Exiting ethutil.")
}

func getStyleOptions() []prompt.Option {
	return []prompt.Option{
		prompt.OptionTitle("ethutil"),
		prompt.OptionPrefixTextColor(prompt.Yellow),
		prompt.OptionPreviewSuggestionTextColor(prompt.Cyan),

		prompt.OptionSuggestionTextColor(prompt.White),
		prompt.OptionSuggestionBGColor(prompt.DarkBlue),

		prompt.OptionDescriptionTextColor(prompt.Black),
		prompt.OptionDescriptionBGColor(prompt.Yellow),

		prompt.OptionSelectedSuggestionTextColor(prompt.Black),
		prompt.OptionSelectedSuggestionBGColor(prompt.Yellow),

		prompt.OptionSelectedDescriptionTextColor(prompt.White),
		prompt.OptionSelectedDescriptionBGColor(prompt.DarkBlue),
	}
}
