package static

import "fmt"

// Head - начало страницы до графика, с формами управления
func Head(width, height, sites, triangles int) string {
	return fmt.Sprintf(headTmpl, width, height, sites, triangles)
}

var (
	headTmpl = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>Делоне и Вороной</title>
		<style>
			body {
				background-color: #1F1F1F;
				color: #d3d3d3;
				font-family: Consolas, monospace;
				overflow: hidden;
			}

			#container {
				display: flex;
				width: 100%%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 50%%;
				padding: 10px;
				box-sizing: border-box;
			}

			#right-container {
				width: 50%%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575;
				overflow-y: auto;
				overflow-x: auto;
				background-color: #1e1e1e;
			}

			#logs {
				white-space: pre-wrap;
				word-wrap: break-word;
				color: #d3d3d3;
				font-family: Consolas, monospace;
			}

			form {
				display: inline-block;
				margin-right: 10px;
			}

			input[type="number"],
			input[type="submit"] {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			input[type="submit"]:hover {
				background-color: #444;
				cursor: pointer;
			}

			h1, label {
				color: #d3d3d3;
			}

			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #555;
				border-radius: 4px;
			}
		</style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <form method="post" action="/insert">
                    <label for="x">X:</label>
                    <input type="number" id="x" name="x" value="0" min="0" max="%[1]d" step="any">
                    <label for="y">Y:</label>
                    <input type="number" id="y" name="y" value="0" min="0" max="%[2]d" step="any">
                    <input type="submit" value="Добавить">
                </form>
                <form method="post" action="/random">
                    <input type="number" name="n" value="10" min="1" max="200">
                    <input type="submit" value="Случайные">
                </form>
                <form method="post" action="/clear">
                    <input type="submit" value="Очистить">
                </form>
                <p>Сайтов: %[3]d, треугольников: %[4]d, <a href="/diagram.png">PNG</a></p>
    `

	Middle = `
            </div>
            <div id="right-container">
                <h1>Логи</h1>
                <div id="logs">`

	Tail = `
                </div>
            </div>
        </div>
    </body>
    </html>
    `
)
