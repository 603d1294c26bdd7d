package domain

// RenderRequest asks the external converter to render one diagram.
type RenderRequest struct {
	// Source is the path of the diagram file.
	Source string
	// OutputDir is the directory the converter writes into.
	OutputDir string
	// Name is the unique base name (without extension) of the output file.
	Name string
	// Options are the resolved rendering options.
	Options Options
	// Command overrides the converter command line when set, executable first.
	Command []string
}

// Asset is a file registered with the host's output-emission mechanism.
type Asset struct {
	// FileName is the output-directory-relative, slash-separated file name.
	FileName string
	// Source is the file content.
	Source []byte
}

// Dimensions are the pixel size of a rendered image.
type Dimensions struct {
	Width  float64
	Height float64
}
