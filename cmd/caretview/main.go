// caretview opens text files and moves a caret through them.
// Arrow keys or Ctrl-P/N/B/F move, Ctrl-Space sets a mark,
// Ctrl-X n switches files, Esc or Ctrl-Q quits.
package main

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ge-editor/caret"
	"github.com/ge-editor/caret/buffer"
	"github.com/ge-editor/caret/keymap"
)

var rootCmd = &cobra.Command{
	Use:   "caretview [file...]",
	Short: "Move a caret through a text file",
	Long: `caretview shows a text file and a caret that keeps its screen column
while moving up and down through short lines and wide characters.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringP("encoding", "e", "UTF-8", "file encoding: UTF-8, UTF-8-mac, Shift_JIS or EUC-JP")
	rootCmd.Flags().IntP("line", "l", 0, "initial caret line, zero based")
	rootCmd.Flags().IntP("column", "c", 0, "initial caret column, zero based")
	rootCmd.Flags().Bool("vi", false, "also move with h, j, k and l")

	// Bind flags to viper, CARETVIEW_ENCODING etc. override the defaults
	_ = viper.BindPFlags(rootCmd.Flags())
	viper.SetEnvPrefix("caretview")
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// open shows the first of paths.
// Files that could not be opened are reported in the mode line, the others are shown.
func open(s tcell.Screen, paths []string, encoding string, keys *keymap.Map) *session {
	bss, err := buffer.NewBufferSets(paths, encoding)
	bs := (*bss)[0]
	v := &view{screen: s, file: bs.File, meta: bss.GetMeta(bs.File)}
	if err != nil {
		v.message = oneLine(err)
	}
	return newSession(bss, encoding, keys, v)
}

func run(cmd *cobra.Command, args []string) error {
	keys := keymap.Default()
	if viper.GetBool("vi") {
		keys = keymap.Vi()
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	ss := open(s, args, viper.GetString("encoding"), keys)
	v := ss.view
	v.meta.Adjust(caret.Set(caret.Clamp(viper.GetInt("line"), viper.GetInt("column"), v.file)), v.file)
	for {
		v.draw()
		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if !ss.handle(ev) {
				return nil
			}
		case nil:
			return nil
		}
	}
}
